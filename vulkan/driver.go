package vulkan

import (
	"runtime"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/andewx/dieselgpu"
	"github.com/andewx/dieselgpu/vkresult"
)

const (
	debugReportExtension            = "VK_EXT_debug_report"
	portabilityEnumerationExtension = "VK_KHR_portability_enumeration"

	// VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR
	createEnumeratePortability = 0x00000001
)

// instance is the Handle handed back to dieselgpu.
type instance struct {
	handle    vk.Instance
	callback  vk.DebugReportCallback
	messenger uintptr // registry id, 0 when none is held
}

// Driver creates instances through the Vulkan loader bound by Init.
type Driver struct{}

func NewDriver() *Driver {
	return &Driver{}
}

var (
	_ dieselgpu.Driver       = (*Driver)(nil)
	_ dieselgpu.LayerQuerier = (*Driver)(nil)
)

// CreateInstance creates the native instance. A messenger is chained into
// VkInstanceCreateInfo.pNext, so it sees messages from vkCreateInstance.
// With dieselgpu.ScopeInstance a debug report callback is also registered on
// the new instance and the messenger lives through vkDestroyInstance; with
// dieselgpu.ScopeCreation it is dropped once creation returns.
func (d *Driver) CreateInstance(info *dieselgpu.InstanceInfo, messenger *dieselgpu.Messenger) (dieselgpu.Handle, vkresult.Status) {
	var extensions []string
	var flags vk.InstanceCreateFlags
	if runtime.GOOS == "darwin" {
		extensions = append(extensions, portabilityEnumerationExtension)
		flags = vk.InstanceCreateFlags(createEnumeratePortability)
	}

	var id uintptr
	var next unsafe.Pointer
	if messenger != nil {
		extensions = append(extensions, debugReportExtension)
		id = messengers.add(messenger)
		ref, allocs := reportCreateInfo(messenger, id).PassRef()
		defer runtime.KeepAlive(allocs)
		next = unsafe.Pointer(ref)
	}
	extensions = safeStrings(extensions)
	layers := safeStrings(info.Layers)

	var handle vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PNext: next,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   safeString(info.AppName),
			ApplicationVersion: info.AppVersion,
			PEngineName:        safeString(info.EngineName),
			EngineVersion:      info.EngineVersion,
			ApiVersion:         info.APIVersion,
		},
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
		Flags:                   flags,
	}, nil, &handle)
	if ret != vk.Success {
		messengers.remove(id)
		return nil, StatusOf(ret)
	}
	if err := vk.InitInstance(handle); err != nil {
		vk.DestroyInstance(handle, nil)
		messengers.remove(id)
		return nil, vkresult.ErrorInitializationFailed
	}

	inst := &instance{handle: handle, callback: vk.NullDebugReportCallback}
	if messenger == nil {
		return inst, vkresult.Success
	}
	if messenger.Scope == dieselgpu.ScopeCreation {
		messengers.remove(id)
		return inst, vkresult.Success
	}

	ret = vk.CreateDebugReportCallback(handle, reportCreateInfo(messenger, id), nil, &inst.callback)
	if ret != vk.Success {
		vk.DestroyInstance(handle, nil)
		messengers.remove(id)
		return nil, StatusOf(ret)
	}
	inst.messenger = id
	return inst, vkresult.Success
}

func (d *Driver) DestroyInstance(h dieselgpu.Handle) {
	inst, ok := h.(*instance)
	if !ok || inst == nil || inst.handle == nil {
		return
	}
	inst.releaseCallback()
	vk.DestroyInstance(inst.handle, nil)
	inst.handle = nil
	messengers.remove(inst.messenger)
	inst.messenger = 0
}

func (d *Driver) AvailableLayers() ([]string, vkresult.Status) {
	return ValidationLayers()
}

func (i *instance) releaseCallback() {
	if i.callback != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(i.handle, i.callback, nil)
		i.callback = vk.NullDebugReportCallback
	}
}

// Native returns the vk.Instance behind a dieselgpu handle.
func Native(h dieselgpu.Handle) (vk.Instance, bool) {
	inst, ok := h.(*instance)
	if !ok || inst == nil || inst.handle == nil {
		return nil, false
	}
	return inst.handle, true
}

// reportCreateInfo always names dispatchReport. The bindings keep a single
// Go function behind the C trampoline, so per-messenger state travels in
// pUserData as a registry id.
func reportCreateInfo(m *dieselgpu.Messenger, id uintptr) *vk.DebugReportCallbackCreateInfo {
	return &vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       reportFlags(m.Severities),
		PfnCallback: dispatchReport,
		PUserData:   userDataOf(id),
	}
}

func reportFlags(sev vkresult.Severity) vk.DebugReportFlags {
	var flags vk.DebugReportFlagBits
	if sev&vkresult.SeverityVerbose != 0 {
		flags |= vk.DebugReportDebugBit
	}
	if sev&vkresult.SeverityInfo != 0 {
		flags |= vk.DebugReportInformationBit
	}
	if sev&vkresult.SeverityWarning != 0 {
		flags |= vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit
	}
	if sev&vkresult.SeverityError != 0 {
		flags |= vk.DebugReportErrorBit
	}
	return vk.DebugReportFlags(flags)
}

// diagnosticOf maps debug report flags onto the debug utils vocabulary
// that dieselgpu speaks.
func diagnosticOf(flags vk.DebugReportFlags, message string) dieselgpu.Diagnostic {
	d := dieselgpu.Diagnostic{Message: message, Types: vkresult.MessageValidation}
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		d.Severity = vkresult.SeverityError
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		d.Severity = vkresult.SeverityWarning
		d.Types = vkresult.MessagePerformance
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		d.Severity = vkresult.SeverityWarning
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		d.Severity = vkresult.SeverityInfo
		d.Types = vkresult.MessageGeneral
	default:
		d.Severity = vkresult.SeverityVerbose
		d.Types = vkresult.MessageGeneral
	}
	return d
}

// dispatchReport is the only debug report callback handed to Vulkan. It
// looks the messenger up by pUserData; messages for a released messenger
// are dropped.
func dispatchReport(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, pLayerPrefix string,
	pMessage string, pUserData unsafe.Pointer) vk.Bool32 {

	m, ok := messengers.lookup(idOf(pUserData))
	if !ok {
		return vk.Bool32(vk.False)
	}
	d := diagnosticOf(flags, pMessage)
	if d.Types&m.Types == 0 {
		return vk.Bool32(vk.False)
	}
	if m.Callback(d, m.UserData) {
		return vk.Bool32(vk.True)
	}
	return vk.Bool32(vk.False)
}
