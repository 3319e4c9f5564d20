// Package portable - Test định dạng tài liệu export và các trường hợp import hỏng.
package portable

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

func sampleFields() []schema.FieldDefinition {
	f1 := schema.NewFieldDefinition(fieldtype.TypeText, "Người vận hành")
	f1.Name = "operator_name"
	f1.IsRequired = true
	f1.Order = 0

	f2 := schema.NewFieldDefinition(fieldtype.TypeSelect, "Máy sử dụng")
	f2.Name = "machine_used"
	f2.Options = []string{"Zamboni 1", "Zamboni 2"}
	f2.Width = schema.WidthHalf
	f2.Order = 1

	return []schema.FieldDefinition{f1, f2}
}

func TestExport_DocumentShape(t *testing.T) {
	doc := Export("resurface", "Nhật ký làm mặt băng", sampleFields())

	assert.Equal(t, "resurface", doc.FormType)
	assert.Equal(t, "Nhật ký làm mặt băng", doc.TemplateName)
	assert.Equal(t, FormatVersion, doc.Version)
	require.Len(t, doc.Fields, 2)

	// ExportDate phải là RFC3339 hợp lệ
	_, err := time.Parse(time.RFC3339, doc.ExportDate)
	assert.NoError(t, err, "ExportDate phải đúng định dạng RFC3339")

	// Tài liệu export không được chứa id và order
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &generic))
	fields := generic["fields"].([]interface{})
	first := fields[0].(map[string]interface{})
	_, hasID := first["id"]
	_, hasOrder := first["order"]
	assert.False(t, hasID, "PortableField không được chứa id")
	assert.False(t, hasOrder, "PortableField không được chứa order")
}

func TestExportImport_RoundTrip(t *testing.T) {
	original := sampleFields()
	data, err := ExportJSON("resurface", "Nhật ký làm mặt băng", original)
	require.NoError(t, err)

	imported, err := Import(data)
	require.NoError(t, err)
	require.Len(t, imported, len(original))

	for i := range original {
		assert.Equal(t, original[i].Name, imported[i].Name)
		assert.Equal(t, original[i].Label, imported[i].Label)
		assert.Equal(t, original[i].Type, imported[i].Type)
		assert.Equal(t, original[i].Options, imported[i].Options)
		assert.Equal(t, original[i].IsRequired, imported[i].IsRequired)
		assert.Equal(t, original[i].Width, imported[i].Width)
		assert.Equal(t, i, imported[i].Order, "Order phải theo vị trí mảng")
		assert.NotEqual(t, original[i].ID, imported[i].ID, "Import phải sinh ID mới")
		assert.NotEmpty(t, imported[i].ID)
	}
}

func TestImport_InvalidFormat(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"JSON hỏng", `{"fields": [`},
		{"thiếu key fields", `{"formType": "resurface", "templateName": "x"}`},
		{"fields là null", `{"fields": null}`},
		{"fields không phải mảng", `{"fields": {"name": "x"}}`},
		{"fields là số", `{"fields": 42}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Import([]byte(c.data))
			assert.True(t, errors.Is(err, common.ErrFormInvalidFormat),
				"phải trả về ErrFormInvalidFormat, nhận %v", err)
		})
	}
}

func TestImport_AppliesDefaults(t *testing.T) {
	data := `{
		"formType": "resurface",
		"fields": [
			{"name": "Operator Name", "label": "Người vận hành", "type": "text"},
			{"name": "width_check", "label": "W", "type": "text", "width": "quarter"}
		]
	}`
	fields, err := Import([]byte(data))
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "operator_name", fields[0].Name, "Tên phải được chuẩn hóa khi import")
	assert.NotNil(t, fields[0].Options, "Options vắng mặt phải thành mảng rỗng")
	assert.Empty(t, fields[0].Options)
	assert.False(t, fields[0].IsRequired)
	assert.Equal(t, schema.WidthFull, fields[0].Width, "Width vắng mặt phải về full")
	assert.Equal(t, schema.WidthFull, fields[1].Width, "Width không hợp lệ phải về full")
}

func TestImport_EmptyFieldsArrayIsValid(t *testing.T) {
	fields, err := Import([]byte(`{"fields": []}`))
	require.NoError(t, err)
	assert.Empty(t, fields)
}
