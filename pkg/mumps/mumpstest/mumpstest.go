// Package mumpstest provides in-memory stand-ins for driver modules.
package mumpstest

import (
	"sync"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// Module is a driver module whose handles record what they were asked to do.
type Module struct {
	// Name tells stub modules apart in assertions.
	Name string

	mu     sync.Mutex
	calls  []string
	logins []mumps.LoginOptions
}

// NewModule returns a stub module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

func (m *Module) NewGtm() mumps.Gtm {
	return &Gtm{module: m}
}

func (m *Module) NewIKS() mumps.IKS {
	return &IKS{module: m}
}

// Calls returns the operations invoked on handles of this module, in order.
func (m *Module) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Logins returns the options passed to IKS.Login.
func (m *Module) Logins() []mumps.LoginOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mumps.LoginOptions(nil), m.logins...)
}

func (m *Module) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Gtm answers every call with a successful result.
type Gtm struct {
	module *Module
	open   bool
}

func (g *Gtm) Open() (mumps.Result, error) {
	g.module.record("open")
	if g.open {
		return mumps.Failure(0, "gtm is opened already"), nil
	}
	g.open = true
	return mumps.Success(1), nil
}

func (g *Gtm) Close() (mumps.Result, error) {
	g.module.record("close")
	if !g.open {
		return mumps.Failure(0, "gtm is closed already"), nil
	}
	g.open = false
	return mumps.Success(1), nil
}

func (g *Gtm) Version() (mumps.Result, error) {
	g.module.record("version")
	if !g.open {
		return mumps.Success(mumps.Banner), nil
	}
	return mumps.Success("GT.M stub " + g.module.Name), nil
}

func (g *Gtm) node(call string, node mumps.Node) (mumps.Result, error) {
	g.module.record(call)
	if !g.open {
		return mumps.Failure(0, "Gtm is closed"), nil
	}
	res := mumps.Success(nil)
	res.Global = node.Global
	return res.Attach(node), nil
}

func (g *Gtm) Get(node mumps.Node) (mumps.Result, error)    { return g.node("get", node) }
func (g *Gtm) Data(node mumps.Node) (mumps.Result, error)   { return g.node("data", node) }
func (g *Gtm) Kill(node mumps.Node) (mumps.Result, error)   { return g.node("kill", node) }
func (g *Gtm) Lock(node mumps.Node) (mumps.Result, error)   { return g.node("lock", node) }
func (g *Gtm) Unlock(node mumps.Node) (mumps.Result, error) { return g.node("unlock", node) }
func (g *Gtm) Order(node mumps.Node) (mumps.Result, error)  { return g.node("order", node) }

func (g *Gtm) Previous(node mumps.Node) (mumps.Result, error) {
	return g.node("previous", node)
}

func (g *Gtm) Set(req mumps.SetRequest) (mumps.Result, error) {
	if req.Data == nil {
		return mumps.Result{}, mumps.ErrMissingData
	}
	res, err := g.node("set", req.Node)
	if err == nil && !res.Failed() {
		res.Data = *req.Data
	}
	return res, err
}

func (g *Gtm) Increment(req mumps.IncrementRequest) (mumps.Result, error) {
	return g.node("increment", req.Node)
}

func (g *Gtm) Merge(req mumps.MergeRequest) (mumps.Result, error) {
	return g.node("merge", req.To)
}

func (g *Gtm) Function(req mumps.FunctionRequest) (mumps.Result, error) {
	if req.Function == "" {
		return mumps.Result{}, mumps.ErrMissingFunction
	}
	res, err := g.node("function", mumps.Node{})
	res.Arguments = req.Arguments
	return res, err
}

func (g *Gtm) GlobalDirectory(req mumps.DirectoryRequest) (mumps.Result, error) {
	return g.node("global_directory", mumps.Node{})
}

// IKS accepts every login.
type IKS struct {
	module *Module
}

func (i *IKS) Login(opts mumps.LoginOptions) (mumps.Result, error) {
	i.module.record("login")
	i.module.mu.Lock()
	i.module.logins = append(i.module.logins, opts)
	i.module.mu.Unlock()
	return mumps.Success(opts.UID), nil
}
