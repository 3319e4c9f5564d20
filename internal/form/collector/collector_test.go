// Package collector - Test ép kiểu giá trị submit và validate required all-or-nothing.
package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

func makeField(t fieldtype.Type, name string, required bool) schema.FieldDefinition {
	f := schema.NewFieldDefinition(t, name)
	f.Name = name
	f.IsRequired = required
	return f
}

func TestSeed_DefaultsAndInitial(t *testing.T) {
	notes := makeField(fieldtype.TypeTextarea, "notes", false)
	notes.DefaultValue = "không có"
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeText, "operator_name", true),
		notes,
		makeField(fieldtype.TypeSection, "shift_info", false),
	}

	seeded := Seed(fields, map[string]interface{}{"operator_name": "Anh"})

	assert.Equal(t, "Anh", seeded["operator_name"], "Giá trị đã thu thập phải thắng DefaultValue")
	assert.Equal(t, "không có", seeded["notes"], "Field chưa có giá trị phải lấy DefaultValue")
	_, hasLayout := seeded["shift_info"]
	assert.False(t, hasLayout, "Layout field không được seed giá trị")
}

func TestCollect_Coercion(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeText, "operator_name", false),
		makeField(fieldtype.TypeNumber, "ice_depth", false),
		makeField(fieldtype.TypeCheckbox, "edger_used", false),
	}

	record, errs := Collect(fields, map[string]interface{}{
		"operator_name": "Anh",
		"ice_depth":     "32.5",
		"edger_used":    "true",
	})
	require.Nil(t, errs)

	assert.Equal(t, "Anh", record["operator_name"])
	assert.Equal(t, float64(32.5), record["ice_depth"], "number phải ép về float64")
	assert.Equal(t, true, record["edger_used"], "checkbox phải ép về bool")
}

func TestCollect_AbsentValuesGetZeroValues(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeText, "notes", false),
		makeField(fieldtype.TypeNumber, "ice_depth", false),
		makeField(fieldtype.TypeCheckbox, "edger_used", false),
	}

	record, errs := Collect(fields, map[string]interface{}{})
	require.Nil(t, errs)

	assert.Equal(t, "", record["notes"])
	assert.Equal(t, float64(0), record["ice_depth"])
	assert.Equal(t, false, record["edger_used"])
}

func TestCollect_LayoutFieldsExcluded(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeSection, "shift_info", true), // required trên layout field không có ý nghĩa
		makeField(fieldtype.TypeText, "operator_name", false),
		makeField(fieldtype.TypeDivider, "div1", false),
	}

	record, errs := Collect(fields, map[string]interface{}{"operator_name": "Anh"})
	require.Nil(t, errs, "Layout field required không được tạo lỗi validate")

	assert.Len(t, record, 1)
	_, hasSection := record["shift_info"]
	assert.False(t, hasSection, "section không được xuất hiện trong record")
}

func TestCollect_RequiredAllOrNothing(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeText, "operator_name", true),
		makeField(fieldtype.TypeTime, "resurface_time", true),
		makeField(fieldtype.TypeTextarea, "notes", false),
	}

	record, errs := Collect(fields, map[string]interface{}{"notes": "ok"})
	assert.Nil(t, record, "Có lỗi thì không được trả về record")
	require.Len(t, errs, 2, "Mỗi field required thiếu phải có đúng một lỗi")

	names := []string{errs[0].Name, errs[1].Name}
	assert.Contains(t, names, "operator_name")
	assert.Contains(t, names, "resurface_time")
}

func TestCollect_BlankStringCountsAsMissing(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeText, "operator_name", true),
		makeField(fieldtype.TypeNumber, "ice_depth", true),
	}

	_, errs := Collect(fields, map[string]interface{}{
		"operator_name": "   ",
		"ice_depth":     "",
	})
	require.Len(t, errs, 2, "Chuỗi trắng phải bị coi là chưa nhập với field required")
}

func TestCollect_RequiredCheckboxMustBeTicked(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeCheckbox, "confirm", true),
	}

	_, errs := Collect(fields, map[string]interface{}{"confirm": false})
	require.Len(t, errs, 1, "Checkbox required chưa tick phải bị coi là trống")

	record, errs := Collect(fields, map[string]interface{}{"confirm": true})
	require.Nil(t, errs)
	assert.Equal(t, true, record["confirm"])
}

func TestCollect_BadNumberValue(t *testing.T) {
	fields := []schema.FieldDefinition{
		makeField(fieldtype.TypeNumber, "ice_depth", false),
	}

	record, errs := Collect(fields, map[string]interface{}{"ice_depth": "ba mươi"})
	assert.Nil(t, record)
	require.Len(t, errs, 1)
	assert.Equal(t, "ice_depth", errs[0].Name)
}
