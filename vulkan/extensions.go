package vulkan

import (
	vk "github.com/vulkan-go/vulkan"

	"github.com/andewx/dieselgpu/vkresult"
)

// InstanceExtensions lists instance extensions available on the platform.
func InstanceExtensions() ([]string, vkresult.Status) {
	var count uint32
	ret := vk.EnumerateInstanceExtensionProperties("", &count, nil)
	if ret != vk.Success {
		return nil, StatusOf(ret)
	}
	list := make([]vk.ExtensionProperties, count)
	ret = vk.EnumerateInstanceExtensionProperties("", &count, list)
	if ret != vk.Success {
		return nil, StatusOf(ret)
	}
	names := make([]string, 0, count)
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, vkresult.Success
}

// ValidationLayers lists the instance layers available on the platform.
func ValidationLayers() ([]string, vkresult.Status) {
	var count uint32
	ret := vk.EnumerateInstanceLayerProperties(&count, nil)
	if ret != vk.Success {
		return nil, StatusOf(ret)
	}
	list := make([]vk.LayerProperties, count)
	ret = vk.EnumerateInstanceLayerProperties(&count, list)
	if ret != vk.Success {
		return nil, StatusOf(ret)
	}
	names := make([]string, 0, count)
	for _, layer := range list[:count] {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, vkresult.Success
}
