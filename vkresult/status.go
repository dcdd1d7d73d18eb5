// Package vkresult translates native Vulkan status codes and debug message
// severities into the host result vocabulary. It holds no state.
package vkresult

import "fmt"

// Status mirrors VkResult.
type Status int32

const (
	Success                                  Status = 0
	NotReady                                 Status = 1
	Timeout                                  Status = 2
	EventSet                                 Status = 3
	EventReset                               Status = 4
	Incomplete                               Status = 5
	ErrorOutOfHostMemory                     Status = -1
	ErrorOutOfDeviceMemory                   Status = -2
	ErrorInitializationFailed                Status = -3
	ErrorDeviceLost                          Status = -4
	ErrorMemoryMapFailed                     Status = -5
	ErrorLayerNotPresent                     Status = -6
	ErrorExtensionNotPresent                 Status = -7
	ErrorFeatureNotPresent                   Status = -8
	ErrorIncompatibleDriver                  Status = -9
	ErrorTooManyObjects                      Status = -10
	ErrorFormatNotSupported                  Status = -11
	ErrorFragmentedPool                      Status = -12
	ErrorUnknown                             Status = -13
	ErrorOutOfPoolMemory                     Status = -1000069000
	ErrorInvalidExternalHandle               Status = -1000072003
	ErrorFragmentation                       Status = -1000161000
	ErrorInvalidOpaqueCaptureAddress         Status = -1000257000
	PipelineCompileRequired                  Status = 1000297000
	ErrorSurfaceLost                         Status = -1000000000
	ErrorNativeWindowInUse                   Status = -1000000001
	Suboptimal                               Status = 1000001003
	ErrorOutOfDate                           Status = -1000001004
	ErrorIncompatibleDisplay                 Status = -1000003001
	ErrorValidationFailed                    Status = -1000011001
	ErrorInvalidShader                       Status = -1000012000
	ErrorInvalidDrmFormatModifierPlaneLayout Status = -1000158000
	ErrorNotPermitted                        Status = -1000174001
	ErrorFullScreenExclusiveModeLost         Status = -1000255000
	ThreadIdle                               Status = 1000268000
	ThreadDone                               Status = 1000268001
	OperationDeferred                        Status = 1000268002
	OperationNotDeferred                     Status = 1000268003
)

// UnhandledCause is reported for any status without an explicit name.
const UnhandledCause = "unhandled error code"

var names = map[Status]string{
	Success:                                  "VK_SUCCESS",
	NotReady:                                 "VK_NOT_READY",
	Timeout:                                  "VK_TIMEOUT",
	EventSet:                                 "VK_EVENT_SET",
	EventReset:                               "VK_EVENT_RESET",
	Incomplete:                               "VK_INCOMPLETE",
	ErrorOutOfHostMemory:                     "VK_ERROR_OUT_OF_HOST_MEMORY",
	ErrorOutOfDeviceMemory:                   "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	ErrorInitializationFailed:                "VK_ERROR_INITIALIZATION_FAILED",
	ErrorDeviceLost:                          "VK_ERROR_DEVICE_LOST",
	ErrorMemoryMapFailed:                     "VK_ERROR_MEMORY_MAP_FAILED",
	ErrorLayerNotPresent:                     "VK_ERROR_LAYER_NOT_PRESENT",
	ErrorExtensionNotPresent:                 "VK_ERROR_EXTENSION_NOT_PRESENT",
	ErrorFeatureNotPresent:                   "VK_ERROR_FEATURE_NOT_PRESENT",
	ErrorIncompatibleDriver:                  "VK_ERROR_INCOMPATIBLE_DRIVER",
	ErrorTooManyObjects:                      "VK_ERROR_TOO_MANY_OBJECTS",
	ErrorFormatNotSupported:                  "VK_ERROR_FORMAT_NOT_SUPPORTED",
	ErrorFragmentedPool:                      "VK_ERROR_FRAGMENTED_POOL",
	ErrorUnknown:                             "VK_ERROR_UNKNOWN",
	ErrorOutOfPoolMemory:                     "VK_ERROR_OUT_OF_POOL_MEMORY",
	ErrorInvalidExternalHandle:               "VK_ERROR_INVALID_EXTERNAL_HANDLE",
	ErrorFragmentation:                       "VK_ERROR_FRAGMENTATION",
	ErrorInvalidOpaqueCaptureAddress:         "VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS",
	PipelineCompileRequired:                  "VK_PIPELINE_COMPILE_REQUIRED",
	ErrorSurfaceLost:                         "VK_ERROR_SURFACE_LOST_KHR",
	ErrorNativeWindowInUse:                   "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	Suboptimal:                               "VK_SUBOPTIMAL_KHR",
	ErrorOutOfDate:                           "VK_ERROR_OUT_OF_DATE_KHR",
	ErrorIncompatibleDisplay:                 "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR",
	ErrorValidationFailed:                    "VK_ERROR_VALIDATION_FAILED_EXT",
	ErrorInvalidShader:                       "VK_ERROR_INVALID_SHADER_NV",
	ErrorInvalidDrmFormatModifierPlaneLayout: "VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT_EXT",
	ErrorNotPermitted:                        "VK_ERROR_NOT_PERMITTED_KHR",
	ErrorFullScreenExclusiveModeLost:         "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT",
	ThreadIdle:                               "VK_THREAD_IDLE_KHR",
	ThreadDone:                               "VK_THREAD_DONE_KHR",
	OperationDeferred:                        "VK_OPERATION_DEFERRED_KHR",
	OperationNotDeferred:                     "VK_OPERATION_NOT_DEFERRED_KHR",
}

func (s Status) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("VkResult(%d)", int32(s))
}

// Cause returns "" for Success and a non-empty cause for every other status.
// Statuses outside the known set, including non-error codes such as
// VK_INCOMPLETE, never read as success.
func Cause(s Status) string {
	if s == Success {
		return ""
	}
	if name, ok := names[s]; ok {
		return name
	}
	return UnhandledCause
}
