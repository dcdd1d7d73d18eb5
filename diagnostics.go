package dieselgpu

import (
	"github.com/andewx/dieselgpu/result"
	"github.com/andewx/dieselgpu/vkresult"
)

const (
	ValidationLayer = "VK_LAYER_KHRONOS_validation"

	diagnosticSeverities = vkresult.SeverityInfo | vkresult.SeverityWarning | vkresult.SeverityError
	diagnosticTypes      = vkresult.MessageGeneral | vkresult.MessageValidation | vkresult.MessagePerformance
)

// forwardDiagnostic writes a validation message to the result.Sink passed
// as userData. It never aborts the native call.
func forwardDiagnostic(msg Diagnostic, userData interface{}) bool {
	level := vkresult.LevelFor(msg.Severity)
	diagnosticsTotal.WithLabelValues(level.String()).Inc()
	if sink, ok := userData.(result.Sink); ok && sink != nil {
		sink.Log(level, msg.Message)
	}
	return false
}

func newMessenger(sink result.Sink, scope DiagnosticsScope) *Messenger {
	return &Messenger{
		Severities: diagnosticSeverities,
		Types:      diagnosticTypes,
		Callback:   forwardDiagnostic,
		UserData:   sink,
		Scope:      scope,
	}
}
