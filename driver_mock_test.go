package dieselgpu

import (
	"github.com/andewx/dieselgpu/result"
	"github.com/andewx/dieselgpu/vkresult"
)

// mockHandle is the native handle produced by MockDriver.
type mockHandle struct {
	id        int
	messenger *Messenger
}

// MockDriver is a Driver for tests. CreateInstance replays Diagnostics
// through the messenger before returning CreateStatus.
type MockDriver struct {
	CreateStatus  vkresult.Status
	HandleOnError bool
	Diagnostics   []Diagnostic
	Layers        []string
	LayersStatus  vkresult.Status

	LastInfo      *InstanceInfo
	LastMessenger *Messenger
	Created       int
	Destroyed     int
	nextID        int
}

func NewMockDriver() *MockDriver {
	return &MockDriver{
		CreateStatus: vkresult.Success,
		LayersStatus: vkresult.Success,
	}
}

func (m *MockDriver) CreateInstance(info *InstanceInfo, messenger *Messenger) (Handle, vkresult.Status) {
	m.LastInfo = info
	m.LastMessenger = messenger
	if messenger != nil {
		for _, d := range m.Diagnostics {
			if messenger.Wants(d.Severity) {
				messenger.Callback(d, messenger.UserData)
			}
		}
	}
	if m.CreateStatus != vkresult.Success {
		if m.HandleOnError {
			m.Created++
			m.nextID++
			return &mockHandle{id: m.nextID}, m.CreateStatus
		}
		return nil, m.CreateStatus
	}
	m.Created++
	m.nextID++
	h := &mockHandle{id: m.nextID}
	if messenger != nil && messenger.Scope == ScopeInstance {
		h.messenger = messenger
	}
	return h, vkresult.Success
}

func (m *MockDriver) DestroyInstance(h Handle) {
	if _, ok := h.(*mockHandle); ok {
		m.Destroyed++
	}
}

// Emit delivers a diagnostic after creation through a messenger kept alive
// by ScopeInstance. It reports whether anything was delivered.
func (m *MockDriver) Emit(h Handle, d Diagnostic) bool {
	mh, ok := h.(*mockHandle)
	if !ok || mh.messenger == nil || !mh.messenger.Wants(d.Severity) {
		return false
	}
	mh.messenger.Callback(d, mh.messenger.UserData)
	return true
}

// MockLayerDriver adds layer enumeration to MockDriver.
type MockLayerDriver struct {
	*MockDriver
}

func (m MockLayerDriver) AvailableLayers() ([]string, vkresult.Status) {
	return m.Layers, m.LayersStatus
}

type logEntry struct {
	level result.Level
	msg   string
}

type recordingSink struct {
	entries []logEntry
}

func (s *recordingSink) Log(level result.Level, msg string) {
	s.entries = append(s.entries, logEntry{level, msg})
}
