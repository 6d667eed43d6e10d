package mumps

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxSubscriptLength bounds a single subscript, in bytes.
	MaxSubscriptLength = 255
	// MaxBufferLength bounds an encoded argument list and a call-in reply.
	MaxBufferLength = 1 << 20
	// ErrorBufferLength bounds a $ZSTATUS message.
	ErrorBufferLength = 1024
)

var (
	ErrSubscriptTooLong  = errors.New("subscript is too big")
	ErrArgumentsTooLong  = errors.New("string exceed maximum length")
	ErrNoReply           = errors.New("No JSON string present")
	ErrMissingData       = errors.New("Need to supply a data property")
	ErrMissingFunction   = errors.New("Need to supply a function property")
	ErrMissingMergeNodes = errors.New("Need to supply to and from properties")
)

// frame wraps s as len:"s", where len counts the quotes.
func frame(s string) string {
	return strconv.Itoa(len(s)+2) + `:"` + s + `"`
}

// EncodeSubscripts renders subscripts the way the call-in routines read
// them: 5:"abc",3:"1". No subscripts encode to the empty string.
func EncodeSubscripts(subs []string) (string, error) {
	parts := make([]string, 0, len(subs))
	for _, s := range subs {
		if len(s) > MaxSubscriptLength {
			return "", fmt.Errorf("%d bytes: %w", len(s), ErrSubscriptTooLong)
		}
		parts = append(parts, frame(s))
	}
	return strings.Join(parts, ","), nil
}

// EncodeArguments renders function arguments with the same framing as
// EncodeSubscripts, bounded by MaxBufferLength as a whole.
func EncodeArguments(args []string) (string, error) {
	var sb strings.Builder
	for i, a := range args {
		f := frame(a)
		if sb.Len()+len(f)+1 > MaxBufferLength {
			return "", ErrArgumentsTooLong
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(f)
	}
	return sb.String(), nil
}

// QuoteData wraps a value for the set routine.
func QuoteData(data string) string {
	return `"` + data + `"`
}

// ParseStatus splits a $ZSTATUS string of the form "code,message".
func ParseStatus(status string) (int, string) {
	codeStr, msg, _ := strings.Cut(status, ",")
	code, _ := strconv.Atoi(strings.TrimSpace(codeStr))
	return code, msg
}

type wireReply struct {
	Ok           any    `json:"ok"`
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Result       any    `json:"result"`
	Global       string `json:"global"`
	Data         any    `json:"data"`
	Defined      *int   `json:"defined"`
}

// DecodeReply parses the JSON document a call-in routine leaves in its
// reply buffer.
func DecodeReply(reply string) (Result, error) {
	if strings.TrimSpace(reply) == "" {
		return Result{}, ErrNoReply
	}

	dec := json.NewDecoder(strings.NewReader(reply))
	dec.UseNumber()
	var w wireReply
	if err := dec.Decode(&w); err != nil {
		return Result{}, fmt.Errorf("failed to decode reply: %w", err)
	}

	res := Result{
		ErrorCode:    w.ErrorCode,
		ErrorMessage: w.ErrorMessage,
		Result:       w.Result,
		Global:       w.Global,
		Data:         stringify(w.Data),
		Defined:      w.Defined,
	}
	if w.Ok == nil {
		res.Ok = w.ErrorCode == 0 && w.ErrorMessage == ""
	} else {
		res.Ok = truthy(w.Ok)
	}
	return res, nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case string:
		return t == "1" || strings.EqualFold(t, "true")
	default:
		return false
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
