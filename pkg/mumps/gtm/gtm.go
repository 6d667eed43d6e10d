//go:build gtm && cgo

package gtm

/*
#cgo CFLAGS: -I/usr/lib/fis-gtm/current
#cgo LDFLAGS: -L/usr/lib/fis-gtm/current -lgtmshr -Wl,-rpath,/usr/lib/fis-gtm/current

#include <stdlib.h>
#include <string.h>
#include <termios.h>
#include <unistd.h>
#include <gtmxc_types.h>

static struct termios nodem_tp;

static void nodem_save_term(void)
{
	(void)tcgetattr(STDIN_FILENO, &nodem_tp);
}

static void nodem_restore_term(void)
{
	(void)tcsetattr(STDIN_FILENO, TCSANOW, &nodem_tp);
}

static int nodem_init(void)
{
	return gtm_init();
}

static int nodem_exit(void)
{
	return gtm_exit();
}

static void nodem_zstatus(char *buf, int len)
{
	gtm_zstatus(buf, len);
}

static void nodem_routine(ci_name_descriptor *d, char *name)
{
	d->rtn_name.address = name;
	d->rtn_name.length = strlen(name);
	d->handle = NULL;
}

static int nodem_version(char *ret)
{
	ci_name_descriptor d;
	nodem_routine(&d, "version");
	return gtm_cip(&d, ret);
}

static int nodem_node(char *name, char *ret, char *glb, char *subs, int mode)
{
	ci_name_descriptor d;
	nodem_routine(&d, name);
	return gtm_cip(&d, ret, glb, subs, (gtm_int_t)mode);
}

static int nodem_set(char *ret, char *glb, char *subs, char *data, int mode)
{
	ci_name_descriptor d;
	nodem_routine(&d, "set");
	return gtm_cip(&d, ret, glb, subs, data, (gtm_int_t)mode);
}

static int nodem_increment(char *ret, char *glb, char *subs, double by, int mode)
{
	ci_name_descriptor d;
	nodem_routine(&d, "increment");
	return gtm_cip(&d, ret, glb, subs, by, (gtm_int_t)mode);
}

static int nodem_merge(char *ret, char *to_glb, char *to_subs, char *from_glb, char *from_subs, int mode)
{
	ci_name_descriptor d;
	nodem_routine(&d, "merge");
	return gtm_cip(&d, ret, to_glb, to_subs, from_glb, from_subs, (gtm_int_t)mode);
}

static int nodem_function(char *ret, char *func, char *args, int relink, int mode)
{
	ci_name_descriptor d;
	nodem_routine(&d, "function");
	return gtm_cip(&d, ret, func, args, (gtm_int_t)relink, (gtm_int_t)mode);
}

static int nodem_directory(char *ret, unsigned int max, char *lo, char *hi)
{
	ci_name_descriptor d;
	nodem_routine(&d, "global_directory");
	return gtm_cip(&d, ret, (gtm_uint_t)max, lo, hi);
}

static int nodem_login(char *ret, char *opts)
{
	ci_name_descriptor d;
	nodem_routine(&d, "login");
	return gtm_cip(&d, ret, opts);
}
*/
import "C"

import (
	"encoding/json"
	"fmt"
	"sync"
	"unsafe"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/config"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// The GT.M runtime is per process and not reentrant: one open flag, and
// one call at a time.
var engine struct {
	mu   sync.Mutex
	open bool
}

func init() {
	mumps.Register(Name, New())
}

// Module is the native driver module.
type Module struct{}

// New returns the native driver module.
func New() *Module {
	return &Module{}
}

// NewGtm returns a handle configured from config.Get at creation time.
func (m *Module) NewGtm() mumps.Gtm {
	cfg := config.Get()
	g := &Gtm{mode: C.int(cfg.Mode)}
	if cfg.AutoRelink {
		g.autoRelink = 1
	}
	// Validate rejects unknown charsets; here they fall back to UTF-8
	g.tc, _ = cfg.Transcoder()
	return g
}

func (m *Module) NewIKS() mumps.IKS {
	return &IKS{}
}

// Gtm is a handle on the process-wide GT.M runtime.
type Gtm struct {
	mode       C.int
	autoRelink C.int
	tc         *mumps.Transcoder
}

func (g *Gtm) Open() (mumps.Result, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.open {
		return mumps.Failure(0, "gtm is opened already"), nil
	}
	C.nodem_save_term()
	if C.nodem_init() != 0 {
		return zstatus(), nil
	}
	engine.open = true
	return mumps.Success(1), nil
}

func (g *Gtm) Close() (mumps.Result, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if !engine.open {
		return mumps.Failure(0, "gtm is closed already"), nil
	}
	if C.nodem_exit() != 0 {
		return zstatus(), nil
	}
	C.nodem_restore_term()
	engine.open = false
	return mumps.Success(1), nil
}

func (g *Gtm) Version() (mumps.Result, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if !engine.open {
		return mumps.Success(mumps.Banner), nil
	}

	ret := newBuffer(mumps.MaxBufferLength)
	defer C.free(unsafe.Pointer(ret))
	if C.nodem_version(ret) != 0 {
		return zstatus(), nil
	}
	return mumps.Success(C.GoString(ret)), nil
}

func (g *Gtm) Get(node mumps.Node) (mumps.Result, error) {
	return g.node("get", node)
}

func (g *Gtm) Data(node mumps.Node) (mumps.Result, error) {
	return g.node("data", node)
}

func (g *Gtm) Kill(node mumps.Node) (mumps.Result, error) {
	return g.node("kill", node)
}

func (g *Gtm) Lock(node mumps.Node) (mumps.Result, error) {
	return g.node("lock", node)
}

func (g *Gtm) Unlock(node mumps.Node) (mumps.Result, error) {
	return g.node("unlock", node)
}

func (g *Gtm) Order(node mumps.Node) (mumps.Result, error) {
	return g.node("order", node)
}

func (g *Gtm) Previous(node mumps.Node) (mumps.Result, error) {
	return g.node("previous", node)
}

func (g *Gtm) node(routine string, node mumps.Node) (mumps.Result, error) {
	subs, err := mumps.EncodeSubscripts(node.Subscripts)
	if err != nil {
		return mumps.Result{}, err
	}

	cname, cglb, csubs := C.CString(routine), C.CString(node.Global), C.CString(subs)
	defer freeAll(cname, cglb, csubs)

	res, err := g.call(routine == "get", func(ret *C.char) C.int {
		return C.nodem_node(cname, ret, cglb, csubs, g.mode)
	})
	if err != nil {
		return res, err
	}
	if routine == "order" || routine == "previous" {
		return res.AttachOrder(node), nil
	}
	return res.Attach(node), nil
}

func (g *Gtm) Set(req mumps.SetRequest) (mumps.Result, error) {
	if req.Data == nil {
		return mumps.Result{}, mumps.ErrMissingData
	}
	subs, err := mumps.EncodeSubscripts(req.Subscripts)
	if err != nil {
		return mumps.Result{}, err
	}
	data := *req.Data
	if g.tc != nil {
		data = g.tc.Encode(data)
	}

	cglb, csubs, cdata := C.CString(req.Global), C.CString(subs), C.CString(mumps.QuoteData(data))
	defer freeAll(cglb, csubs, cdata)

	res, err := g.call(false, func(ret *C.char) C.int {
		return C.nodem_set(ret, cglb, csubs, cdata, g.mode)
	})
	if err != nil {
		return res, err
	}
	return res.Attach(req.Node), nil
}

func (g *Gtm) Increment(req mumps.IncrementRequest) (mumps.Result, error) {
	subs, err := mumps.EncodeSubscripts(req.Subscripts)
	if err != nil {
		return mumps.Result{}, err
	}

	cglb, csubs := C.CString(req.Global), C.CString(subs)
	defer freeAll(cglb, csubs)

	res, err := g.call(false, func(ret *C.char) C.int {
		return C.nodem_increment(ret, cglb, csubs, C.double(req.Amount()), g.mode)
	})
	if err != nil {
		return res, err
	}
	return res.Attach(req.Node), nil
}

func (g *Gtm) Merge(req mumps.MergeRequest) (mumps.Result, error) {
	if req.To.Global == "" || req.From.Global == "" {
		return mumps.Result{}, mumps.ErrMissingMergeNodes
	}
	toSubs, err := mumps.EncodeSubscripts(req.To.Subscripts)
	if err != nil {
		return mumps.Result{}, err
	}
	fromSubs, err := mumps.EncodeSubscripts(req.From.Subscripts)
	if err != nil {
		return mumps.Result{}, err
	}

	ctg, cts := C.CString(req.To.Global), C.CString(toSubs)
	cfg, cfs := C.CString(req.From.Global), C.CString(fromSubs)
	defer freeAll(ctg, cts, cfg, cfs)

	return g.call(false, func(ret *C.char) C.int {
		return C.nodem_merge(ret, ctg, cts, cfg, cfs, g.mode)
	})
}

func (g *Gtm) Function(req mumps.FunctionRequest) (mumps.Result, error) {
	if req.Function == "" {
		return mumps.Result{}, mumps.ErrMissingFunction
	}
	args := req.Arguments
	if g.tc != nil {
		args = make([]string, len(req.Arguments))
		for i, a := range req.Arguments {
			args[i] = g.tc.Encode(a)
		}
	}
	encoded, err := mumps.EncodeArguments(args)
	if err != nil {
		return mumps.Result{}, err
	}

	cfn, cargs := C.CString(req.Function), C.CString(encoded)
	defer freeAll(cfn, cargs)

	res, err := g.call(true, func(ret *C.char) C.int {
		return C.nodem_function(ret, cfn, cargs, g.autoRelink, g.mode)
	})
	if err != nil {
		return res, err
	}
	res.Arguments = req.Arguments
	return res, nil
}

func (g *Gtm) GlobalDirectory(req mumps.DirectoryRequest) (mumps.Result, error) {
	clo, chi := C.CString(req.Lo), C.CString(req.Hi)
	defer freeAll(clo, chi)

	return g.call(false, func(ret *C.char) C.int {
		return C.nodem_directory(ret, C.uint(req.Max), clo, chi)
	})
}

// call runs one call-in routine under the engine lock and decodes its
// reply. decode converts the reply from the database charset first.
func (g *Gtm) call(decode bool, fn func(ret *C.char) C.int) (mumps.Result, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if !engine.open {
		return mumps.Failure(0, "Gtm is closed"), nil
	}

	ret := newBuffer(mumps.MaxBufferLength)
	defer C.free(unsafe.Pointer(ret))
	if fn(ret) != 0 {
		return zstatus(), nil
	}

	reply := C.GoString(ret)
	if decode && g.tc != nil {
		reply = g.tc.Decode(reply)
	}
	return mumps.DecodeReply(reply)
}

// IKS logs in through the login call-in routine.
type IKS struct{}

func (i *IKS) Login(opts mumps.LoginOptions) (mumps.Result, error) {
	payload, err := json.Marshal(opts)
	if err != nil {
		return mumps.Result{}, fmt.Errorf("failed to encode login options: %w", err)
	}
	copts := C.CString(string(payload))
	defer C.free(unsafe.Pointer(copts))

	g := &Gtm{}
	return g.call(false, func(ret *C.char) C.int {
		return C.nodem_login(ret, copts)
	})
}

// zstatus reads the last error from the runtime. Callers hold engine.mu.
func zstatus() mumps.Result {
	buf := newBuffer(mumps.ErrorBufferLength)
	defer C.free(unsafe.Pointer(buf))
	C.nodem_zstatus(buf, C.int(mumps.ErrorBufferLength))
	return mumps.Failure(mumps.ParseStatus(C.GoString(buf)))
}

func newBuffer(size int) *C.char {
	return (*C.char)(C.calloc(C.size_t(size), 1))
}

func freeAll(ptrs ...*C.char) {
	for _, p := range ptrs {
		C.free(unsafe.Pointer(p))
	}
}
