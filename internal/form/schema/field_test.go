// Package schema - Test chuẩn hóa tên field và bất biến đánh số Order.
package schema

import (
	"errors"
	"testing"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
)

func TestNormalizeFieldName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Operator Name", "operator_name"},
		{"  Ice   Depth  ", "ice_depth"},
		{"water\ttemp\nc", "water_temp_c"},
		{"already_normal", "already_normal"},
		{"", ""},
	}
	for _, c := range cases {
		got := NormalizeFieldName(c.in)
		if got != c.want {
			t.Errorf("NormalizeFieldName(%q) = %q, muốn %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeFieldName_Idempotent(t *testing.T) {
	inputs := []string{"Operator Name", "  a  b  c ", "x_y_z", "MIXED Case  Name"}
	for _, in := range inputs {
		once := NormalizeFieldName(in)
		twice := NormalizeFieldName(once)
		if once != twice {
			t.Errorf("NormalizeFieldName không idempotent với %q: lần 1 = %q, lần 2 = %q", in, once, twice)
		}
	}
}

func TestValidateFieldName(t *testing.T) {
	existing := []string{"operator_name", "notes"}

	if err := ValidateFieldName("ice_depth", existing); err != nil {
		t.Errorf("Tên hợp lệ bị từ chối: %v", err)
	}
	if err := ValidateFieldName("", existing); !errors.Is(err, common.ErrFormInvalidCharacters) {
		t.Errorf("Tên rỗng phải trả về ErrFormInvalidCharacters, nhận %v", err)
	}
	if err := ValidateFieldName("bad-name!", existing); !errors.Is(err, common.ErrFormInvalidCharacters) {
		t.Errorf("Tên chứa ký tự lạ phải trả về ErrFormInvalidCharacters, nhận %v", err)
	}
	if err := ValidateFieldName("Upper_Case", existing); !errors.Is(err, common.ErrFormInvalidCharacters) {
		t.Errorf("Tên chưa lowercase phải trả về ErrFormInvalidCharacters, nhận %v", err)
	}
	if err := ValidateFieldName("notes", existing); !errors.Is(err, common.ErrFormDuplicateName) {
		t.Errorf("Tên trùng phải trả về ErrFormDuplicateName, nhận %v", err)
	}
}

func TestSortAndRenumber_GapsAndUnsorted(t *testing.T) {
	fields := []FieldDefinition{
		{ID: "c", Name: "c", Type: fieldtype.TypeText, Order: 7},
		{ID: "a", Name: "a", Type: fieldtype.TypeText, Order: 0},
		{ID: "b", Name: "b", Type: fieldtype.TypeText, Order: 3},
	}
	SortAndRenumber(fields)

	wantIDs := []string{"a", "b", "c"}
	for i, f := range fields {
		if f.ID != wantIDs[i] {
			t.Errorf("Vị trí %d: muốn field %q, nhận %q", i, wantIDs[i], f.ID)
		}
		if f.Order != i {
			t.Errorf("Field %q: Order phải là %d, nhận %d", f.ID, i, f.Order)
		}
	}
}

func TestClone_DeepCopiesOptions(t *testing.T) {
	f := NewFieldDefinition(fieldtype.TypeSelect, "Máy sử dụng")
	f.Options = []string{"Zamboni 1", "Zamboni 2"}

	c := f.Clone()
	c.Options[0] = "changed"

	if f.Options[0] != "Zamboni 1" {
		t.Error("Clone phải copy riêng slice Options, không chia sẻ backing array")
	}
	if c.ID != f.ID {
		t.Error("Clone phải giữ nguyên ID")
	}
}

func TestIsLayout(t *testing.T) {
	section := NewFieldDefinition(fieldtype.TypeSection, "Thông tin ca làm")
	text := NewFieldDefinition(fieldtype.TypeText, "Người vận hành")

	if !section.IsLayout() {
		t.Error("section phải là layout field")
	}
	if text.IsLayout() {
		t.Error("text không phải layout field")
	}
}
