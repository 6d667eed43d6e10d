package mumps

//go:generate go run github.com/dmarkham/enumer -type Mode -trimprefix Mode -transform lower -yaml -output mode.gen.go

// Mode selects how the call-in routines treat global names and values.
type Mode int

const (
	ModeCanonical Mode = iota
	ModeStrict
)
