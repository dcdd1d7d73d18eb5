// Package vulkan is the native dieselgpu.Driver backed by
// github.com/vulkan-go/vulkan.
package vulkan

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// Loader selects where vkGetInstanceProcAddr comes from.
type Loader int

const (
	// LoaderDefault resolves the system Vulkan loader directly.
	LoaderDefault Loader = iota
	// LoaderGLFW takes the loader entry point from GLFW, for hosts that
	// also open windows through GLFW.
	LoaderGLFW
)

func (l Loader) String() string {
	switch l {
	case LoaderDefault:
		return "default"
	case LoaderGLFW:
		return "glfw"
	default:
		return fmt.Sprintf("Loader(%d)", int(l))
	}
}

func ParseLoader(s string) (Loader, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return LoaderDefault, nil
	case "glfw":
		return LoaderGLFW, nil
	}
	return LoaderDefault, fmt.Errorf("unknown vulkan loader %q", s)
}

var ErrNoVulkan = errors.New("vulkan: loader reports no Vulkan support")

// Init binds the Vulkan entry points. It must run on the main thread when
// using LoaderGLFW and be paired with Terminate.
func Init(loader Loader) error {
	switch loader {
	case LoaderGLFW:
		runtime.LockOSThread()
		if err := glfw.Init(); err != nil {
			return fmt.Errorf("vulkan: glfw init: %w", err)
		}
		if !glfw.VulkanSupported() {
			glfw.Terminate()
			return ErrNoVulkan
		}
		vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	default:
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return fmt.Errorf("vulkan: %w", err)
		}
	}
	if err := vk.Init(); err != nil {
		if loader == LoaderGLFW {
			glfw.Terminate()
		}
		return fmt.Errorf("vulkan: init: %w", err)
	}
	return nil
}

// Terminate releases what Init acquired.
func Terminate(loader Loader) {
	if loader == LoaderGLFW {
		glfw.Terminate()
		runtime.UnlockOSThread()
	}
}
