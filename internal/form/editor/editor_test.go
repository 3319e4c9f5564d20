// Package editor - Test bất biến Order liên tục 0..n-1 qua các thao tác chỉnh sửa.
package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// assertContiguousOrder kiểm tra Order của mọi field trùng với vị trí mảng.
func assertContiguousOrder(t *testing.T, fields []schema.FieldDefinition) {
	t.Helper()
	for i, f := range fields {
		if f.Order != i {
			t.Errorf("Field %q ở vị trí %d có Order = %d, phải bằng vị trí mảng", f.Name, i, f.Order)
		}
	}
}

func newSessionWith(t *testing.T, n int) *EditSession {
	t.Helper()
	s := NewSession(nil)
	for i := 0; i < n; i++ {
		if _, err := s.Insert(fieldtype.TypeText, "Field"); err != nil {
			t.Fatalf("Insert thất bại: %v", err)
		}
	}
	return s
}

func TestInsert_AppendsWithNextOrder(t *testing.T) {
	s := newSessionWith(t, 3)

	fields := s.Fields()
	if len(fields) != 3 {
		t.Fatalf("Muốn 3 field, nhận %d", len(fields))
	}
	assertContiguousOrder(t, fields)

	// Tên sinh tự động phải unique
	seen := map[string]bool{}
	for _, f := range fields {
		if seen[f.Name] {
			t.Errorf("Tên field %q bị trùng", f.Name)
		}
		seen[f.Name] = true
	}

	// Field mới nhất được chọn trên properties panel
	if s.SelectedID() != fields[2].ID {
		t.Error("Field vừa thêm phải được chọn")
	}
}

func TestInsert_RejectsUnknownType(t *testing.T) {
	s := NewSession(nil)
	if _, err := s.Insert(fieldtype.Type("signature"), "Chữ ký"); err == nil {
		t.Error("Insert loại field ngoài catalog phải trả về lỗi")
	}
}

func TestDeleteThenInsert_OrderStaysContiguous(t *testing.T) {
	// Ba field, xóa field giữa (order=1), thêm field mới: field mới phải nhận order=2.
	s := newSessionWith(t, 3)
	middle := s.Fields()[1]

	if err := s.Delete(middle.ID); err != nil {
		t.Fatalf("Delete thất bại: %v", err)
	}
	assertContiguousOrder(t, s.Fields())

	added, err := s.Insert(fieldtype.TypeNumber, "Mới")
	if err != nil {
		t.Fatalf("Insert thất bại: %v", err)
	}
	if added.Order != 2 {
		t.Errorf("Field mới sau khi xóa field giữa phải có Order = 2, nhận %d", added.Order)
	}
	assertContiguousOrder(t, s.Fields())
}

func TestDelete_ClearsSelection(t *testing.T) {
	s := newSessionWith(t, 2)
	target := s.Fields()[1]
	s.Select(target.ID)

	if err := s.Delete(target.ID); err != nil {
		t.Fatalf("Delete thất bại: %v", err)
	}
	if s.SelectedID() != "" {
		t.Error("Xóa field đang chọn phải clear selection")
	}

	if err := s.Delete("khong-ton-tai"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Xóa field không tồn tại phải trả về ErrNotFound, nhận %v", err)
	}
}

func TestReorder_MoveNotSwap(t *testing.T) {
	s := newSessionWith(t, 4)
	before := s.Fields()

	// Di chuyển field đầu xuống vị trí 2: các field giữa dồn lên, không swap.
	if err := s.Reorder(before[0].ID, 2); err != nil {
		t.Fatalf("Reorder thất bại: %v", err)
	}
	after := s.Fields()
	wantIDs := []string{before[1].ID, before[2].ID, before[0].ID, before[3].ID}
	for i, f := range after {
		if f.ID != wantIDs[i] {
			t.Errorf("Vị trí %d: muốn %q, nhận %q", i, wantIDs[i], f.ID)
		}
	}
	assertContiguousOrder(t, after)
}

func TestReorder_ClampsTargetIndex(t *testing.T) {
	s := newSessionWith(t, 3)
	first := s.Fields()[0]

	if err := s.Reorder(first.ID, 99); err != nil {
		t.Fatalf("Reorder với index ngoài biên phải được kẹp, nhận lỗi %v", err)
	}
	fields := s.Fields()
	if fields[len(fields)-1].ID != first.ID {
		t.Error("Index vượt biên phải kẹp về cuối mảng")
	}
	assertContiguousOrder(t, fields)

	if err := s.Reorder("khong-ton-tai", 0); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Reorder field không tồn tại phải trả về ErrNotFound, nhận %v", err)
	}
}

func TestUpdateProperties_NameNormalizedAndValidated(t *testing.T) {
	s := newSessionWith(t, 2)
	fields := s.Fields()

	name := "Operator   Name"
	updated, err := s.UpdateProperties(fields[0].ID, FieldPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProperties thất bại: %v", err)
	}
	if updated.Name != "operator_name" {
		t.Errorf("Tên phải được chuẩn hóa thành operator_name, nhận %q", updated.Name)
	}

	// Đặt tên field thứ hai trùng với field đầu phải bị chặn
	dup := "operator_name"
	if _, err := s.UpdateProperties(fields[1].ID, FieldPatch{Name: &dup}); !errors.Is(err, common.ErrFormDuplicateName) {
		t.Errorf("Tên trùng phải trả về ErrFormDuplicateName, nhận %v", err)
	}

	// Đặt lại chính tên hiện tại của field không bị coi là trùng
	if _, err := s.UpdateProperties(fields[0].ID, FieldPatch{Name: &dup}); err != nil {
		t.Errorf("Đặt lại tên hiện tại của chính field đó phải hợp lệ, nhận %v", err)
	}
}

func TestUpdateProperties_RejectsInvalidWidth(t *testing.T) {
	s := newSessionWith(t, 1)
	bad := schema.Width("quarter")
	if _, err := s.UpdateProperties(s.Fields()[0].ID, FieldPatch{Width: &bad}); err == nil {
		t.Error("Width ngoài danh sách full/half/third phải bị từ chối")
	}
}

func TestDuplicate(t *testing.T) {
	s := NewSession(nil)
	orig, err := s.Insert(fieldtype.TypeSelect, "Máy sử dụng")
	if err != nil {
		t.Fatalf("Insert thất bại: %v", err)
	}
	name := "machine_used"
	opts := []string{"Zamboni 1", "Zamboni 2"}
	if _, err := s.UpdateProperties(orig.ID, FieldPatch{Name: &name, Options: &opts}); err != nil {
		t.Fatalf("UpdateProperties thất bại: %v", err)
	}

	copy1, err := s.Duplicate(orig.ID)
	if err != nil {
		t.Fatalf("Duplicate thất bại: %v", err)
	}
	if copy1.ID == orig.ID {
		t.Error("Bản sao phải có ID mới")
	}
	if !strings.HasSuffix(copy1.Label, " (Copy)") {
		t.Errorf("Label bản sao phải có hậu tố (Copy), nhận %q", copy1.Label)
	}
	if copy1.Name != "machine_used_copy" {
		t.Errorf("Tên bản sao phải là machine_used_copy, nhận %q", copy1.Name)
	}
	if len(copy1.Options) != 2 {
		t.Errorf("Bản sao phải giữ nguyên options, nhận %v", copy1.Options)
	}

	// Nhân bản lần nữa: tên phải được chống trùng bằng hậu tố số
	copy2, err := s.Duplicate(orig.ID)
	if err != nil {
		t.Fatalf("Duplicate lần 2 thất bại: %v", err)
	}
	if copy2.Name != "machine_used_copy_2" {
		t.Errorf("Bản sao thứ hai phải là machine_used_copy_2, nhận %q", copy2.Name)
	}
	assertContiguousOrder(t, s.Fields())
}
