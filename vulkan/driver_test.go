//go:build vulkan

package vulkan

import (
	"testing"

	"github.com/andewx/dieselgpu"
	"github.com/andewx/dieselgpu/alloc"
	"github.com/andewx/dieselgpu/result"
)

// Run with: go test -tags vulkan ./vulkan/
// Needs a Vulkan loader and at least one ICD.

func TestNativeCreateAndDestroy(t *testing.T) {
	if err := Init(LoaderDefault); err != nil {
		t.Skipf("vulkan unavailable: %v", err)
	}
	defer Terminate(LoaderDefault)

	heap := alloc.NewHeapAllocator()
	inst, res := dieselgpu.CreateInstance(heap, NewDriver(), result.Discard, dieselgpu.DefaultRequirements())
	if !res.Success() {
		if inst != nil {
			inst.Destroy()
		}
		t.Fatalf("CreateInstance: %v", res)
	}
	if _, ok := Native(inst.Handle()); !ok {
		t.Error("handle is not a native instance")
	}
	inst.Destroy()
	if heap.Live() != 0 {
		t.Errorf("heap.Live() = %d", heap.Live())
	}
}

func TestNativeValidation(t *testing.T) {
	if err := Init(LoaderDefault); err != nil {
		t.Skipf("vulkan unavailable: %v", err)
	}
	defer Terminate(LoaderDefault)

	layers, status := ValidationLayers()
	if status.String() != "VK_SUCCESS" {
		t.Fatalf("ValidationLayers: %v", status)
	}
	t.Logf("layers: %v", layers)

	req := dieselgpu.DefaultRequirements()
	req.RequestValidation = true
	req.PrevalidateLayers = true
	req.Diagnostics = dieselgpu.ScopeInstance

	var messages int
	sink := result.SinkFunc(func(level result.Level, msg string) {
		messages++
		t.Logf("%s: %s", level, msg)
	})
	inst, res := dieselgpu.CreateInstance(alloc.Default(), NewDriver(), sink, req)
	defer inst.Destroy()
	if !res.Success() {
		t.Skipf("validation layer not usable here: %v", res)
	}
	t.Logf("%d messages", messages)
}

func TestNativeConsecutiveValidatedInstances(t *testing.T) {
	if err := Init(LoaderDefault); err != nil {
		t.Skipf("vulkan unavailable: %v", err)
	}
	defer Terminate(LoaderDefault)

	req := dieselgpu.DefaultRequirements()
	req.RequestValidation = true
	req.Diagnostics = dieselgpu.ScopeInstance

	baseline := messengers.len()
	counts := make([]int, 2)
	for i := range counts {
		i := i
		sink := result.SinkFunc(func(result.Level, string) { counts[i]++ })
		before := counts[0]
		inst, res := dieselgpu.CreateInstance(alloc.Default(), NewDriver(), sink, req)
		if !res.Success() {
			if inst != nil {
				inst.Destroy()
			}
			t.Skipf("validation layer not usable here: %v", res)
		}
		if messengers.len() != baseline+1 {
			t.Errorf("instance %d: %d live messengers", i, messengers.len()-baseline)
		}
		inst.Destroy()
		if i == 1 && counts[0] != before {
			t.Errorf("second instance delivered %d messages to the first sink", counts[0]-before)
		}
	}
	if messengers.len() != baseline {
		t.Errorf("%d messengers left after destroy", messengers.len()-baseline)
	}
}
