package dieselgpu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DiagnosticsScope selects how long the validation messenger stays attached.
type DiagnosticsScope uint32

const (
	// ScopeCreation attaches the messenger for the instance creation call only.
	ScopeCreation DiagnosticsScope = iota
	// ScopeInstance keeps the messenger alive until the instance is destroyed.
	ScopeInstance
)

func (s DiagnosticsScope) String() string {
	switch s {
	case ScopeCreation:
		return "creation"
	case ScopeInstance:
		return "instance"
	default:
		return fmt.Sprintf("DiagnosticsScope(%d)", uint32(s))
	}
}

func ParseDiagnosticsScope(s string) (DiagnosticsScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "creation":
		return ScopeCreation, nil
	case "instance":
		return ScopeInstance, nil
	}
	return ScopeCreation, fmt.Errorf("unknown diagnostics scope %q", s)
}

var (
	DefaultAPIVersion = MakeAPIVersion(1, 0, 0)

	ErrUnknownOption = errors.New("unknown requirements option")
)

// Requirements describes what the caller needs from the native instance.
// It is passed by value and never retained.
type Requirements struct {
	MinAPIVersion     uint32
	MaxAPIVersion     uint32
	RequestValidation bool

	// Reserved: not yet forwarded to the native application info.
	AppName    string
	AppVersion uint32

	Diagnostics       DiagnosticsScope
	PrevalidateLayers bool
}

func DefaultRequirements() Requirements {
	return Requirements{
		MinAPIVersion: DefaultAPIVersion,
		MaxAPIVersion: DefaultAPIVersion,
	}
}

// Set assigns a recognized option by name. Versions accept either the
// dotted form "1.2.0" or a packed integer.
func (r *Requirements) Set(option, value string) error {
	var err error
	switch option {
	case "min_api_version":
		r.MinAPIVersion, err = ParseAPIVersion(value)
	case "max_api_version":
		r.MaxAPIVersion, err = ParseAPIVersion(value)
	case "request_validation":
		r.RequestValidation, err = strconv.ParseBool(value)
	case "app_name":
		r.AppName = value
	case "app_version":
		r.AppVersion, err = ParseAPIVersion(value)
	case "diagnostics":
		r.Diagnostics, err = ParseDiagnosticsScope(value)
	case "prevalidate_layers":
		r.PrevalidateLayers, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	if err != nil {
		return fmt.Errorf("option %s: %w", option, err)
	}
	return nil
}

// MakeAPIVersion packs a version the way VK_MAKE_VERSION does.
func MakeAPIVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

func FormatAPIVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, (v>>12)&0x3ff, v&0xfff)
}

func ParseAPIVersion(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid version %q", s)
		}
		return uint32(v), nil
	}
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid version %q", s)
	}
	limits := []uint64{0x3ff, 0x3ff, 0xfff}
	var nums [3]uint32
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || n > limits[i] {
			return 0, fmt.Errorf("invalid version %q", s)
		}
		nums[i] = uint32(n)
	}
	return MakeAPIVersion(nums[0], nums[1], nums[2]), nil
}
