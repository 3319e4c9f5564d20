package events

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type auditedDoc struct {
	FacilityID primitive.ObjectID
	UpdatedAt  int64
}

type auditedDocPtr struct {
	FacilityID *primitive.ObjectID
}

func TestGetFacilityIDFromDocument(t *testing.T) {
	facilityID := primitive.NewObjectID()

	if got := GetFacilityIDFromDocument(auditedDoc{FacilityID: facilityID}); got != facilityID {
		t.Errorf("Muốn lấy được facilityId %s từ value field, nhận %s", facilityID.Hex(), got.Hex())
	}
	if got := GetFacilityIDFromDocument(&auditedDoc{FacilityID: facilityID}); got != facilityID {
		t.Errorf("Muốn lấy được facilityId từ con trỏ document, nhận %s", got.Hex())
	}
	if got := GetFacilityIDFromDocument(auditedDocPtr{FacilityID: &facilityID}); got != facilityID {
		t.Errorf("Muốn lấy được facilityId từ pointer field, nhận %s", got.Hex())
	}

	// Các trường hợp không có facilityId đều trả về zero ObjectID
	if got := GetFacilityIDFromDocument(auditedDocPtr{}); !got.IsZero() {
		t.Errorf("Muốn zero ObjectID với pointer field nil, nhận %s", got.Hex())
	}
	if got := GetFacilityIDFromDocument(struct{ Name string }{Name: "x"}); !got.IsZero() {
		t.Errorf("Muốn zero ObjectID với struct không có FacilityID, nhận %s", got.Hex())
	}
	if got := GetFacilityIDFromDocument(nil); !got.IsZero() {
		t.Errorf("Muốn zero ObjectID với document nil, nhận %s", got.Hex())
	}
}

func TestGetInt64Field(t *testing.T) {
	doc := auditedDoc{UpdatedAt: 1767225600001}

	if got := GetInt64Field(doc, "UpdatedAt"); got != 1767225600001 {
		t.Errorf("Muốn 1767225600001, nhận %d", got)
	}
	if got := GetInt64Field(&doc, "UpdatedAt"); got != 1767225600001 {
		t.Errorf("Muốn đọc được qua con trỏ, nhận %d", got)
	}
	if got := GetInt64Field(doc, "KhongTonTai"); got != 0 {
		t.Errorf("Muốn 0 với field không tồn tại, nhận %d", got)
	}
	if got := GetInt64Field(nil, "UpdatedAt"); got != 0 {
		t.Errorf("Muốn 0 với document nil, nhận %d", got)
	}
}
