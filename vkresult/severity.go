package vkresult

import "github.com/andewx/dieselgpu/result"

// Severity mirrors VkDebugUtilsMessageSeverityFlagBitsEXT.
type Severity uint32

const (
	SeverityVerbose Severity = 0x00000001
	SeverityInfo    Severity = 0x00000010
	SeverityWarning Severity = 0x00000100
	SeverityError   Severity = 0x00001000
)

// MessageType mirrors VkDebugUtilsMessageTypeFlagBitsEXT.
type MessageType uint32

const (
	MessageGeneral     MessageType = 0x00000001
	MessageValidation  MessageType = 0x00000002
	MessagePerformance MessageType = 0x00000004
)

// LevelFor maps a diagnostic severity onto the host log level. Anything
// that is not exactly info or warning reports as an error.
func LevelFor(sev Severity) result.Level {
	switch sev {
	case SeverityInfo:
		return result.LevelInfo
	case SeverityWarning:
		return result.LevelWarning
	default:
		return result.LevelError
	}
}
