package output

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
	"unicode"
)

const (
	emptyCell  = "-"
	timeLayout = "2006-01-02 15:04:05"
)

// TableFormatter renders data as aligned columns.
// Accepted shapes are *Table, slices, maps and structs. Anything else is
// written as indented JSON.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool
}

// Format implements Formatter.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	var table *Table
	switch d := data.(type) {
	case nil:
		return nil
	case *Table:
		table = d
	case Table:
		table = &d
	default:
		t, ok := buildTable(reflect.ValueOf(data), f.Wide)
		if !ok {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		}
		table = t
	}
	return table.render(w, !f.NoHeaders)
}

func buildTable(v reflect.Value, wide bool) (*Table, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return listTable(v, wide), true
	case reflect.Map:
		return mapTable(v), true
	case reflect.Struct:
		t := &Table{Headers: []string{"FIELD", "VALUE"}}
		for _, f := range visibleFields(v.Type(), wide) {
			t.AddRow(f.label, cell(v.Field(f.index)))
		}
		return t, true
	}
	return nil, false
}

type field struct {
	index int
	label string
}

// visibleFields lists the exported fields of a struct type in declaration
// order. The `table:"-"` tag hides a field and `table:"wide"` limits it to
// wide output. Labels come from the json tag when one is set.
func visibleFields(t reflect.Type, wide bool) []field {
	var out []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		opts := strings.Split(sf.Tag.Get("table"), ",")
		if slices.Contains(opts, "-") || (slices.Contains(opts, "wide") && !wide) {
			continue
		}
		label := sf.Name
		if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
			label = name
		}
		out = append(out, field{index: i, label: label})
	}
	return out
}

func listTable(v reflect.Value, wide bool) *Table {
	elem := v.Type().Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	if elem.Kind() != reflect.Struct {
		t := &Table{Headers: []string{"VALUE"}}
		for i := 0; i < v.Len(); i++ {
			t.AddRow(cell(v.Index(i)))
		}
		return t
	}

	fields := visibleFields(elem, wide)
	t := &Table{Headers: make([]string, len(fields))}
	for i, f := range fields {
		t.Headers[i] = header(f.label)
	}
	for i := 0; i < v.Len(); i++ {
		item := reflect.Indirect(v.Index(i))
		cells := make([]string, len(fields))
		for j, f := range fields {
			if item.IsValid() {
				cells[j] = cell(item.Field(f.index))
			} else {
				cells[j] = emptyCell
			}
		}
		t.AddRow(cells...)
	}
	return t
}

func mapTable(v reflect.Value) *Table {
	t := &Table{Headers: []string{"KEY", "VALUE"}}
	iter := v.MapRange()
	for iter.Next() {
		t.AddRow(cell(iter.Key()), cell(iter.Value()))
	}
	slices.SortFunc(t.Rows, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})
	return t
}

// FormatCell renders a single value the way table cells are rendered.
func FormatCell(value any) string {
	return cell(reflect.ValueOf(value))
}

func cell(v reflect.Value) string {
	if !v.IsValid() {
		return emptyCell
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return emptyCell
	}
	if v.CanInterface() {
		if s, ok := scalarCell(v.Interface()); ok {
			return s
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return cell(v.Elem())
	case reflect.String:
		return nonEmpty(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return emptyCell
		}
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Map:
		if v.Len() == 0 {
			return emptyCell
		}
		return fmt.Sprintf("{%d keys}", v.Len())
	}
	return fmt.Sprint(v.Interface())
}

// scalarCell handles the concrete types that need a fixed rendering.
func scalarCell(x any) (string, bool) {
	switch x := x.(type) {
	case time.Time:
		if x.IsZero() {
			return emptyCell, true
		}
		return x.Format(timeLayout), true
	case time.Duration:
		return x.String(), true
	case []byte:
		return nonEmpty(hex.EncodeToString(x)), true
	case fmt.Stringer:
		return nonEmpty(x.String()), true
	}
	return "", false
}

func nonEmpty(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

// header turns a field label such as "createdAt", "CreatedAt" or
// "created_at" into "CREATED_AT".
func header(label string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range label {
		if r == '_' || r == '-' || r == ' ' {
			b.WriteByte('_')
			prevLower = false
			continue
		}
		if unicode.IsUpper(r) && prevLower {
			b.WriteByte('_')
		}
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Table is a set of rows rendered under shared headers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render writes the table with its header line.
func (t *Table) Render(w io.Writer) error {
	return t.render(w, true)
}

func (t *Table) render(w io.Writer, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	write := func(cells []string) error {
		_, err := io.WriteString(tw, strings.Join(cells, "\t")+"\n")
		return err
	}

	if headers && len(t.Headers) > 0 {
		if err := write(t.Headers); err != nil {
			return err
		}
	}
	for _, r := range t.Rows {
		if err := write(r); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// AddRow appends one row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// SetHeaders replaces the header line.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}
