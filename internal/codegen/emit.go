package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/b71729/mavgen/internal/schema"
)

// Emit renders one file per message plus the dispatch file, and writes
// each through out. File names are lower-cased message names so the
// output directory reads the way the dialect names its messages.
func Emit(d schema.Dialect, out FileWriter) error {
	dialectIR := BuildDialectIR(d)

	for _, msg := range dialectIR.Messages {
		var buf bytes.Buffer
		if err := messageTemplate.Execute(&buf, msg); err != nil {
			return fmt.Errorf("codegen: rendering %s: %w", msg.Name, err)
		}
		name := strings.ToLower(msg.Name) + ".go"
		if err := out.WriteFile(name, buf.Bytes()); err != nil {
			return fmt.Errorf("codegen: writing %s: %w", name, err)
		}
	}

	for _, enum := range dialectIR.Enums {
		var buf bytes.Buffer
		if err := enumTemplate.Execute(&buf, enum); err != nil {
			return fmt.Errorf("codegen: rendering enum %s: %w", enum.GoName, err)
		}
		name := "enum_" + strings.ToLower(enum.GoName) + ".go"
		if err := out.WriteFile(name, buf.Bytes()); err != nil {
			return fmt.Errorf("codegen: writing %s: %w", name, err)
		}
	}

	var dispatchBuf bytes.Buffer
	if err := dispatchTemplate.Execute(&dispatchBuf, dialectIR); err != nil {
		return fmt.Errorf("codegen: rendering dispatch: %w", err)
	}
	if err := out.WriteFile("dispatch.go", dispatchBuf.Bytes()); err != nil {
		return fmt.Errorf("codegen: writing dispatch.go: %w", err)
	}

	return nil
}
