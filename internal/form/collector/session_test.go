// Package collector - Test state machine của phiên nhập liệu.
package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

func sessionFields() []schema.FieldDefinition {
	return []schema.FieldDefinition{
		makeField(fieldtype.TypeText, "operator_name", true),
		makeField(fieldtype.TypeNumber, "ice_depth", false),
	}
}

func TestFillSession_HappyPath(t *testing.T) {
	s := NewFillSession()
	assert.Equal(t, StateLoading, s.State())

	require.NoError(t, s.Load(sessionFields(), nil))
	assert.Equal(t, StateReady, s.State())

	require.NoError(t, s.SetValue("operator_name", "Anh"))
	require.NoError(t, s.SetValue("ice_depth", "30"))

	record, fieldErrs, err := s.Submit()
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, StateSubmitted, s.State())
	assert.Equal(t, "Anh", record["operator_name"])
	assert.Equal(t, float64(30), record["ice_depth"])
}

func TestFillSession_ValidationFailureReturnsToReady(t *testing.T) {
	s := NewFillSession()
	require.NoError(t, s.Load(sessionFields(), nil))
	require.NoError(t, s.SetValue("ice_depth", "12"))

	record, fieldErrs, err := s.Submit()
	require.NoError(t, err, "Validate thất bại không phải lỗi hệ thống")
	assert.Nil(t, record)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "operator_name", fieldErrs[0].Name)

	// Quay về Ready, giá trị đã nhập còn nguyên để sửa và submit lại
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, "12", s.Values()["ice_depth"])
	assert.Len(t, s.FieldErrors(), 1)

	require.NoError(t, s.SetValue("operator_name", "Anh"))
	record, fieldErrs, err = s.Submit()
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, StateSubmitted, s.State())
	assert.NotNil(t, record)
}

func TestFillSession_InvalidTransitions(t *testing.T) {
	s := NewFillSession()

	// Chưa load thì không nhận giá trị và không submit được
	assert.Error(t, s.SetValue("x", 1))
	_, _, err := s.Submit()
	assert.Error(t, err)

	require.NoError(t, s.Load(sessionFields(), nil))
	assert.Error(t, s.Load(sessionFields(), nil), "Load hai lần phải bị chặn")

	// Sau khi submit thành công, phiên không nhận giá trị nữa
	require.NoError(t, s.SetValue("operator_name", "Anh"))
	_, _, err = s.Submit()
	require.NoError(t, err)
	assert.Error(t, s.SetValue("operator_name", "B"))
}

func TestFillSession_LoadSeedsInitialValues(t *testing.T) {
	fields := sessionFields()
	fields[1].DefaultValue = "25"

	s := NewFillSession()
	require.NoError(t, s.Load(fields, map[string]interface{}{"operator_name": "Anh"}))

	values := s.Values()
	assert.Equal(t, "Anh", values["operator_name"], "Giá trị initial phải thắng DefaultValue")
	assert.Equal(t, "25", values["ice_depth"], "Field thiếu initial phải lấy DefaultValue")
}
