package global

import (
	"context"
	"regexp"
	"strings"

	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/fieldtype"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fieldNameRegex: machine key của field sau khi chuẩn hóa
// chỉ gồm chữ thường, chữ số và dấu gạch dưới.
var fieldNameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("exists", validateExists)
	_ = Validate.RegisterValidation("field_name", validateFieldName)
	_ = Validate.RegisterValidation("field_type", validateFieldType)
	_ = Validate.RegisterValidation("field_width", validateFieldWidth)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateFieldName kiểm tra machine key của field.
// Name đã qua chuẩn hóa chỉ được chứa [a-z0-9_].
func validateFieldName(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	return fieldNameRegex.MatchString(value)
}

// validateFieldType kiểm tra loại field có nằm trong registry không
func validateFieldType(fl validator.FieldLevel) bool {
	_, ok := fieldtype.Lookup(fieldtype.Type(fl.Field().String()))
	return ok
}

// validateFieldWidth kiểm tra độ rộng hiển thị của field
func validateFieldWidth(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "full", "half", "third":
		return true
	}
	return false
}

// validateExists kiểm tra ObjectID tồn tại trong collection (foreign key validation)
// Format: validate:"exists=<collection_name>"
// Ví dụ: validate:"exists=facilities"
func validateExists(fl validator.FieldLevel) bool {
	value := fl.Field()

	collectionName := fl.Param()
	if collectionName == "" {
		return false
	}

	var objID primitive.ObjectID
	switch v := value.Interface().(type) {
	case string:
		if v == "" {
			return true // Empty string = optional, skip validation (nếu có omitempty)
		}
		var err error
		objID, err = primitive.ObjectIDFromHex(v)
		if err != nil {
			return false
		}
	case primitive.ObjectID:
		if v == primitive.NilObjectID {
			return true
		}
		objID = v
	case *primitive.ObjectID:
		if v == nil {
			return true
		}
		objID = *v
	default:
		return false
	}

	collection, exist := RegistryCollections.Get(collectionName)
	if !exist {
		return false
	}

	ctx := context.Background()
	count, err := collection.CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		return false
	}

	return count > 0
}
