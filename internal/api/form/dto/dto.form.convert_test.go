// Package formdto - Test chuyển FieldInput thành field collection của engine.
package formdto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
)

func TestToFieldDefinitions(t *testing.T) {
	inputs := []FieldInput{
		{ID: "keep-this-id", Name: "Operator Name", Label: "Người vận hành", Type: "text", IsRequired: true},
		{Name: "machine_used", Label: "Máy sử dụng", Type: "select", Options: []string{"Zamboni 1"}, Width: "half"},
		{Name: "notes", Label: "Ghi chú", Type: "textarea", Width: "quarter"},
	}

	fields, err := ToFieldDefinitions(inputs)
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "keep-this-id", fields[0].ID, "ID client gửi lên phải được giữ")
	assert.Equal(t, "operator_name", fields[0].Name, "Tên phải được chuẩn hóa")
	assert.NotEmpty(t, fields[1].ID, "Field không có ID phải được sinh ID mới")
	assert.Equal(t, schema.WidthHalf, fields[1].Width)
	assert.Equal(t, schema.WidthFull, fields[2].Width, "Width không hợp lệ phải về full")
	assert.NotNil(t, fields[2].Options, "Options vắng mặt phải thành mảng rỗng")

	for i, f := range fields {
		assert.Equal(t, i, f.Order, "Order phải đánh số lại theo vị trí mảng")
	}
}

// Payload save với tên chưa chuẩn hóa phải qua được struct validation để
// ToFieldDefinitions còn chuẩn hóa, giống đường import.
func TestFieldInput_AcceptsUnnormalizedName(t *testing.T) {
	global.InitValidator()

	input := FieldInput{Name: "Operator Name", Label: "Người vận hành", Type: "text"}
	require.NoError(t, global.Validate.Struct(input), "tên chưa chuẩn hóa không được bị chặn trước khi chuẩn hóa")

	fields, err := ToFieldDefinitions([]FieldInput{input})
	require.NoError(t, err)
	assert.Equal(t, "operator_name", fields[0].Name)
}

func TestToFieldDefinitions_RejectsDuplicateNames(t *testing.T) {
	inputs := []FieldInput{
		{Name: "notes", Label: "A", Type: "text"},
		{Name: "Notes", Label: "B", Type: "text"}, // trùng sau chuẩn hóa
	}
	_, err := ToFieldDefinitions(inputs)
	assert.True(t, errors.Is(err, common.ErrFormDuplicateName), "nhận %v", err)
}

func TestToFieldDefinitions_RejectsInvalidCharacters(t *testing.T) {
	inputs := []FieldInput{
		{Name: "bad-name!", Label: "A", Type: "text"},
	}
	_, err := ToFieldDefinitions(inputs)
	assert.True(t, errors.Is(err, common.ErrFormInvalidCharacters), "nhận %v", err)
}

func TestToFieldDefinitions_IgnoresClientOrder(t *testing.T) {
	inputs := []FieldInput{
		{Name: "a", Label: "A", Type: "text"},
		{Name: "b", Label: "B", Type: "text"},
	}
	fields, err := ToFieldDefinitions(inputs)
	require.NoError(t, err)
	assert.Equal(t, 0, fields[0].Order)
	assert.Equal(t, 1, fields[1].Order)
}
