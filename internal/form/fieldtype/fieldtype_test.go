// Package fieldtype - Test tính đóng của catalog loại field.
package fieldtype

import "testing"

func TestCatalogIsClosed(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("Catalog phải có đúng 16 loại field, nhận %d", len(all))
	}

	want := []Type{
		TypeText, TypeEmail, TypeNumber, TypePhone, TypeURL, TypeTextarea,
		TypeSelect, TypeRadio, TypeCheckbox, TypeToggle, TypeDate, TypeTime,
		TypeFile, TypeSlider, TypeSection, TypeDivider,
	}
	seen := make(map[Type]bool, len(all))
	for _, d := range all {
		seen[d.Type] = true
	}
	for _, typ := range want {
		if !seen[typ] {
			t.Errorf("Catalog thiếu loại field %q", typ)
		}
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup(TypeNumber)
	if !ok {
		t.Fatal("Lookup(number) phải tìm thấy")
	}
	if d.ValueKind != ValueNumber {
		t.Errorf("number phải có ValueKind = ValueNumber, nhận %v", d.ValueKind)
	}

	if _, ok := Lookup(Type("signature")); ok {
		t.Error("Loại field ngoài catalog không được tìm thấy")
	}
	if IsValid(Type("signature")) {
		t.Error("IsValid phải từ chối loại field ngoài catalog")
	}
}

func TestValueKinds(t *testing.T) {
	cases := []struct {
		typ  Type
		kind ValueKind
	}{
		{TypeNumber, ValueNumber},
		{TypeCheckbox, ValueBool},
		{TypeText, ValueString},
		{TypeSlider, ValueString},
		{TypeToggle, ValueString},
		{TypeDate, ValueString},
	}
	for _, c := range cases {
		d, ok := Lookup(c.typ)
		if !ok {
			t.Fatalf("Lookup(%s) phải tìm thấy", c.typ)
		}
		if d.ValueKind != c.kind {
			t.Errorf("%s: ValueKind = %v, muốn %v", c.typ, d.ValueKind, c.kind)
		}
	}
}

func TestLayoutFlags(t *testing.T) {
	if !IsLayout(TypeSection) || !IsLayout(TypeDivider) {
		t.Error("section và divider phải là layout field")
	}
	if IsLayout(TypeText) || IsLayout(TypeCheckbox) {
		t.Error("Field nhập liệu không được đánh dấu layout")
	}
}

func TestRequiresOptions(t *testing.T) {
	if !RequiresOptions(TypeSelect) || !RequiresOptions(TypeRadio) {
		t.Error("select và radio phải yêu cầu options")
	}
	if RequiresOptions(TypeCheckbox) || RequiresOptions(TypeText) {
		t.Error("checkbox và text không yêu cầu options")
	}
}
