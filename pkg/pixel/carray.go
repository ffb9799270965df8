package pixel

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ValuesPerLine is the number of values per row in emitted C arrays.
const ValuesPerLine = 12

// WriteCArray writes arr as a C uint16_t array literal named name.
func WriteCArray(w io.Writer, name string, arr *RGB565Array) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "const uint16_t %s[] = {\n", name)
	for i := 0; i < len(arr.Values); i += ValuesPerLine {
		end := i + ValuesPerLine
		if end > len(arr.Values) {
			end = len(arr.Values)
		}
		bw.WriteString("    ")
		for n, v := range arr.Values[i:end] {
			if n > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "0x%04X", v)
		}
		bw.WriteString(",\n")
	}
	bw.WriteString("};\n")
	return bw.Flush()
}

// FormatCArray returns the text WriteCArray produces.
func FormatCArray(name string, arr *RGB565Array) string {
	var sb strings.Builder
	WriteCArray(&sb, name, arr)
	return sb.String()
}
