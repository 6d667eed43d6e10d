package mumps

// Banner is what Version reports while the database is closed.
const Banner = "Go adaptor for GT.M"

// Module is what a driver artifact exports. It constructs the handles a
// caller works with.
type Module interface {
	// NewGtm returns a database handle. The handle starts closed.
	NewGtm() Gtm
	// NewIKS returns a handle to the identity/session subsystem.
	NewIKS() IKS
}

// Gtm is a handle on the GT.M database engine.
//
// Failures reported by the engine come back as a Result with Ok set to
// false. The error return is reserved for requests the bridge cannot
// express, such as an oversized subscript or a missing data property.
type Gtm interface {
	Open() (Result, error)
	Close() (Result, error)
	Version() (Result, error)

	Get(node Node) (Result, error)
	Set(req SetRequest) (Result, error)
	Data(node Node) (Result, error)
	Kill(node Node) (Result, error)
	Lock(node Node) (Result, error)
	Unlock(node Node) (Result, error)
	Order(node Node) (Result, error)
	Previous(node Node) (Result, error)
	Increment(req IncrementRequest) (Result, error)
	Merge(req MergeRequest) (Result, error)
	Function(req FunctionRequest) (Result, error)
	GlobalDirectory(req DirectoryRequest) (Result, error)
}

// IKS is the identity/session subsystem. Its semantics are owned by the
// database side; the bridge only forwards the options.
type IKS interface {
	Login(opts LoginOptions) (Result, error)
}

// LoginOptions are the fields recognized by IKS.Login.
type LoginOptions struct {
	// Key is the caller-generated session identifier.
	Key string `json:"key"`
	// UID is the user identifier.
	UID string `json:"uid"`
	// Pass1 is the primary credential.
	Pass1 string `json:"pass1"`
	// Pass2 is the secondary credential and may be empty.
	Pass2 string `json:"pass2"`
}

// Node addresses a global, optionally below the root.
type Node struct {
	Global     string   `json:"global"`
	Subscripts []string `json:"subscripts,omitempty"`
}

// SetRequest stores Data at a node.
type SetRequest struct {
	Node
	Data *string `json:"data"`
}

// IncrementRequest adds By to the value at a node. A zero By increments by one.
type IncrementRequest struct {
	Node
	By float64 `json:"by,omitempty"`
}

// Amount returns the increment to apply.
func (r IncrementRequest) Amount() float64 {
	if r.By == 0 {
		return 1
	}
	return r.By
}

// MergeRequest copies the subtree at From onto To.
type MergeRequest struct {
	To   Node `json:"to"`
	From Node `json:"from"`
}

// FunctionRequest calls an extrinsic function.
type FunctionRequest struct {
	Function  string   `json:"function"`
	Arguments []string `json:"arguments,omitempty"`
}

// DirectoryRequest lists global names between Lo and Hi, at most Max of
// them (zero means no limit).
type DirectoryRequest struct {
	Max uint32 `json:"max,omitempty"`
	Lo  string `json:"lo,omitempty"`
	Hi  string `json:"hi,omitempty"`
}

// Result is the reply to every driver call.
type Result struct {
	Ok           bool     `json:"ok"`
	ErrorCode    int      `json:"errorCode,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
	Result       any      `json:"result,omitempty"`
	Global       string   `json:"global,omitempty"`
	Subscripts   []string `json:"subscripts,omitempty"`
	Data         string   `json:"data,omitempty"`
	Defined      *int     `json:"defined,omitempty"`
	Arguments    []string `json:"arguments,omitempty"`
}

// Success returns an ok result carrying value.
func Success(value any) Result {
	return Result{Ok: true, Result: value}
}

// Failure returns a failed result.
func Failure(code int, message string) Result {
	return Result{ErrorCode: code, ErrorMessage: message}
}

// Failed reports whether the engine rejected the call.
func (r Result) Failed() bool {
	return !r.Ok || r.ErrorCode != 0 || r.ErrorMessage != ""
}

// Attach copies the request subscripts onto a successful result.
func (r Result) Attach(node Node) Result {
	if node.Subscripts == nil || r.Failed() {
		return r
	}
	r.Subscripts = append([]string(nil), node.Subscripts...)
	return r
}

// AttachOrder is Attach for order and previous: the last subscript is
// replaced by the sibling the engine found.
func (r Result) AttachOrder(node Node) Result {
	if len(node.Subscripts) == 0 || r.Failed() {
		return r
	}
	subs := append([]string(nil), node.Subscripts...)
	if r.Result != nil {
		subs[len(subs)-1] = stringify(r.Result)
	}
	r.Subscripts = subs
	return r
}
