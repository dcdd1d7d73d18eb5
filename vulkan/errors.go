package vulkan

import (
	"fmt"
	"path/filepath"
	"runtime"

	vk "github.com/vulkan-go/vulkan"

	"github.com/andewx/dieselgpu/vkresult"
)

// StatusOf converts a native result into the translator's status type.
func StatusOf(ret vk.Result) vkresult.Status {
	return vkresult.Status(ret)
}

// NewError returns nil for vk.Success and an error naming the caller
// otherwise.
func NewError(ret vk.Result) error {
	if ret == vk.Success {
		return nil
	}
	status := StatusOf(ret)
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("vulkan error: %s (%d)", status, int32(ret))
	}
	return fmt.Errorf("vulkan error: %s (%d) on %s:%d", status, int32(ret), filepath.Base(file), line)
}

func safeString(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = safeString(list[i])
	}
	return out
}
