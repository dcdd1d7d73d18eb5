// Package dieselgpu owns the lifecycle of the process's graphics API
// instance: creation with optional validation diagnostics, uniform reporting
// of native status codes, and teardown.
//
// There is no package-level instance. CreateInstance returns an *Instance
// that callers pass explicitly to everything that needs it. An Instance has
// a single owner and no internal locking; callers serialize access.
package dieselgpu

import (
	"unsafe"

	"github.com/andewx/dieselgpu/alloc"
	"github.com/andewx/dieselgpu/result"
	"github.com/andewx/dieselgpu/vkresult"
)

const (
	engineName    = "dieselgpu"
	engineVersion = 0 // 0.0.0

	vkErrorFormat = "Vulkan error (%s):\n%s"
)

var vkErrorTemplate = result.NewTemplate(result.LevelError, vkErrorFormat, 2, false)

// Instance is the native graphics instance plus the allocator that holds
// its storage. The handle is either fully valid or nil.
type Instance struct {
	alloc  alloc.Allocator
	block  *alloc.Allocation
	driver Driver
	sink   result.Sink

	vkError result.Template

	handle    Handle
	destroyed bool
}

// CreateInstance allocates an Instance from a and asks driver for a native
// instance satisfying req. Diagnostics and failures are written to sink.
//
// If allocation fails the returned *Instance is nil. If the native call
// fails the *Instance is still returned with a nil handle and the caller
// must Destroy it to release its storage. A nil allocator means
// alloc.Default().
func CreateInstance(a alloc.Allocator, driver Driver, sink result.Sink, req Requirements) (*Instance, result.Result) {
	if sink == nil {
		sink = result.Discard
	}
	if a == nil {
		a = alloc.Default()
	}
	if driver == nil {
		instanceCreatesTotal.WithLabelValues("failed").Inc()
		return nil, result.Failed(result.LevelError, "failed to create instance: no driver").Log(sink)
	}

	block, err := a.Allocate(uint64(unsafe.Sizeof(Instance{})), uint64(unsafe.Alignof(Instance{})))
	if err != nil {
		instanceCreatesTotal.WithLabelValues("alloc_failed").Inc()
		return nil, result.Failed(result.LevelError, "failed to allocate instance: "+err.Error()).Log(sink)
	}

	inst := &Instance{
		alloc:   a,
		block:   block,
		driver:  driver,
		sink:    sink,
		vkError: vkErrorTemplate,
	}

	// req.AppName and req.AppVersion are reserved. The instance always
	// identifies itself as the engine.
	info := &InstanceInfo{
		AppName:       engineName,
		AppVersion:    engineVersion,
		EngineName:    engineName,
		EngineVersion: engineVersion,
		APIVersion:    req.MinAPIVersion,
	}

	var messenger *Messenger
	if req.RequestValidation {
		info.Layers = []string{ValidationLayer}
		messenger = newMessenger(sink, req.Diagnostics)

		if req.PrevalidateLayers {
			if status := checkLayers(driver, info.Layers); status != vkresult.Success {
				instanceCreatesTotal.WithLabelValues("failed").Inc()
				return inst, inst.LogResult(status, "validation layer unavailable")
			}
		}
	}

	handle, status := driver.CreateInstance(info, messenger)
	if status != vkresult.Success {
		if handle != nil {
			driver.DestroyInstance(handle)
		}
		instanceCreatesTotal.WithLabelValues("failed").Inc()
		return inst, inst.LogResult(status, "failed to create instance")
	}

	inst.handle = handle
	instanceCreatesTotal.WithLabelValues("created").Inc()
	return inst, result.OK()
}

func checkLayers(driver Driver, wanted []string) vkresult.Status {
	q, ok := driver.(LayerQuerier)
	if !ok {
		return vkresult.Success
	}
	available, status := q.AvailableLayers()
	if status != vkresult.Success {
		return status
	}
	for _, w := range wanted {
		found := false
		for _, a := range available {
			if a == w {
				found = true
				break
			}
		}
		if !found {
			return vkresult.ErrorLayerNotPresent
		}
	}
	return vkresult.Success
}

// Handle returns the native instance, or nil if creation failed.
func (i *Instance) Handle() Handle {
	return i.handle
}

// Valid reports whether the instance holds a live native handle.
func (i *Instance) Valid() bool {
	return i.handle != nil && !i.destroyed
}

// Destroy releases the native instance, if any, and frees the Instance's
// storage through its allocator. It must be called exactly once, after all
// other use of the Instance. A second call panics.
func (i *Instance) Destroy() {
	if i.destroyed {
		panic("dieselgpu: Instance.Destroy called more than once")
	}
	i.destroyed = true

	if i.handle != nil {
		i.driver.DestroyInstance(i.handle)
		i.handle = nil
	}
	i.alloc.Free(i.block)
	i.block = nil
}

// LogResult converts a native status into a result. Success returns
// result.OK() with no side effect. Any other status is formatted with the
// instance's error template, written to the instance's sink and returned.
// A nil Instance, as left by a failed allocation, formats with the default
// template and has no sink to write to.
func (i *Instance) LogResult(status vkresult.Status, message string) result.Result {
	cause := vkresult.Cause(status)
	if cause == "" {
		return result.OK()
	}
	nativeFailuresTotal.WithLabelValues(status.String()).Inc()
	if i == nil {
		return vkErrorTemplate.With(cause, message)
	}
	return i.vkError.With(cause, message).Log(i.sink)
}
