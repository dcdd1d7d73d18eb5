// Package shader compiles WGSL compute shaders to SPIR-V artifacts that a
// GPU instance can load.
package shader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gogpu/naga"
)

// Magic is the first word of every SPIR-V module.
const Magic uint32 = 0x07230203

// EntryPoint is the name every compute shader must export.
const EntryPoint = "main"

var (
	ErrNoEntryPoint = errors.New("no compute entry point named " + EntryPoint)
	ErrNotSPIRV     = errors.New("not a SPIR-V module")
)

// Status classifies a failed compilation.
type Status int

const (
	StatusInvalidStage Status = iota + 1
	StatusCompilationError
)

func (s Status) String() string {
	switch s {
	case StatusInvalidStage:
		return "invalid stage"
	case StatusCompilationError:
		return "compilation error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

type CompileError struct {
	Path        string
	Status      Status
	Diagnostics string
	Err         error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Status, e.Diagnostics)
}

func (e *CompileError) Unwrap() error { return e.Err }

var (
	computeMain = regexp.MustCompile(`@compute(?:\s|@[a-z_]+\([^)]*\))*\s*fn\s+` + EntryPoint + `\s*\(`)
	comments    = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)
)

// hasComputeMain reports whether src declares the compute entry point
// outside of comments.
func hasComputeMain(src string) bool {
	return computeMain.MatchString(comments.ReplaceAllString(src, " "))
}

// Compile turns WGSL source into SPIR-V bytes. path is only used to label
// diagnostics.
func Compile(path string, source []byte) ([]byte, error) {
	src := string(source)
	if !hasComputeMain(src) {
		return nil, &CompileError{
			Path:        path,
			Status:      StatusInvalidStage,
			Diagnostics: ErrNoEntryPoint.Error(),
			Err:         ErrNoEntryPoint,
		}
	}
	spv, err := naga.Compile(src)
	if err != nil {
		return nil, &CompileError{
			Path:        path,
			Status:      StatusCompilationError,
			Diagnostics: strings.TrimSpace(err.Error()),
			Err:         err,
		}
	}
	return spv, nil
}

// CompileFile reads and compiles a WGSL file.
func CompileFile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(path, src)
}

// WriteArtifact writes spv to path, replacing any previous content.
func WriteArtifact(path string, spv []byte) error {
	if _, err := Words(spv); err != nil {
		return err
	}
	return os.WriteFile(path, spv, 0o644)
}

// ReadArtifact loads a SPIR-V file as the word slice vk.ShaderModuleCreateInfo
// expects in PCode.
func ReadArtifact(path string) ([]uint32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	words, err := Words(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Words converts little-endian SPIR-V bytes to 32-bit words.
func Words(b []byte) ([]uint32, error) {
	if len(b) < 4 || len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: size %d is not a positive multiple of 4", ErrNotSPIRV, len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	if words[0] != Magic {
		return nil, fmt.Errorf("%w: bad magic %#08x", ErrNotSPIRV, words[0])
	}
	return words, nil
}
