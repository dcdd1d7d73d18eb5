package dieselgpu

import "github.com/andewx/dieselgpu/vkresult"

// Handle is an opaque native instance. nil is the null handle.
type Handle interface{}

// Driver is the native graphics API surface the instance manager calls into.
type Driver interface {
	// CreateInstance creates a native instance. A non-nil messenger must
	// receive diagnostics at least for the duration of the call. On any
	// status other than vkresult.Success the returned handle is nil.
	CreateInstance(info *InstanceInfo, messenger *Messenger) (Handle, vkresult.Status)
	// DestroyInstance releases a handle returned by CreateInstance, including
	// any messenger still attached to it.
	DestroyInstance(h Handle)
}

// LayerQuerier is implemented by drivers that can list available layers
// before an instance exists.
type LayerQuerier interface {
	AvailableLayers() ([]string, vkresult.Status)
}

// InstanceInfo is the application and layer description handed to the driver.
type InstanceInfo struct {
	AppName       string
	AppVersion    uint32
	EngineName    string
	EngineVersion uint32
	APIVersion    uint32
	Layers        []string
}

// Diagnostic is a single message reported by the validation layer.
type Diagnostic struct {
	Severity vkresult.Severity
	Types    vkresult.MessageType
	Message  string
}

// DiagnosticCallback receives a diagnostic together with the messenger's
// UserData. Returning true asks the driver to abort the triggering call.
type DiagnosticCallback func(msg Diagnostic, userData interface{}) bool

// Messenger describes which diagnostics to deliver and where.
type Messenger struct {
	Severities vkresult.Severity
	Types      vkresult.MessageType
	Callback   DiagnosticCallback
	UserData   interface{}
	Scope      DiagnosticsScope
}

// Wants reports whether a message with the given severity passes the filter.
func (m *Messenger) Wants(sev vkresult.Severity) bool {
	return m.Severities&sev != 0
}
