package collector

import (
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/common"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/form/schema"
)

// State là trạng thái của một phiên nhập liệu.
type State string

const (
	StateLoading    State = "loading"    // Đang load field collection từ store
	StateReady      State = "ready"      // Sẵn sàng nhận giá trị
	StateSubmitting State = "submitting" // Đang xử lý submit
	StateSubmitted  State = "submitted"  // Submit thành công, record đã hoàn chỉnh
)

// FillSession là state machine của một phiên nhập liệu:
// Loading → Ready → Submitting → {Submitted | ValidationFailed → Ready}.
// Hủy phiên chỉ đơn giản là bỏ object, giá trị in-memory mất theo.
type FillSession struct {
	state  State
	fields []schema.FieldDefinition
	values map[string]interface{}
	errors []FieldError
}

// NewFillSession tạo phiên nhập liệu ở trạng thái Loading.
func NewFillSession() *FillSession {
	return &FillSession{state: StateLoading}
}

// State trả về trạng thái hiện tại.
func (s *FillSession) State() State {
	return s.state
}

// FieldErrors trả về danh sách lỗi validate của lần submit thất bại gần nhất.
func (s *FillSession) FieldErrors() []FieldError {
	return s.errors
}

// Load nạp field collection đã commit và seed giá trị ban đầu, chuyển sang Ready.
//
// Parameters:
// - fields: Collection đã commit từ template store
// - initial: Record giá trị đã thu thập trước đó, có thể nil
//
// Returns:
// - error: Lỗi nếu phiên không ở trạng thái Loading
func (s *FillSession) Load(fields []schema.FieldDefinition, initial map[string]interface{}) error {
	if s.state != StateLoading {
		return common.NewError(
			common.ErrCodeFormSubmission,
			"Phiên nhập liệu đã được load trước đó",
			common.StatusBadRequest,
			nil,
		)
	}
	s.fields = schema.CloneAll(fields)
	s.values = Seed(s.fields, initial)
	s.state = StateReady
	return nil
}

// SetValue ghi nhận giá trị thô của một widget.
//
// Parameters:
// - name: Machine key của field
// - value: Giá trị thô từ widget
//
// Returns:
// - error: Lỗi nếu phiên không ở trạng thái Ready
func (s *FillSession) SetValue(name string, value interface{}) error {
	if s.state != StateReady {
		return common.NewError(
			common.ErrCodeFormSubmission,
			"Phiên nhập liệu chưa sẵn sàng nhận giá trị",
			common.StatusBadRequest,
			nil,
		)
	}
	s.values[name] = value
	return nil
}

// Values trả về bản copy của các giá trị thô đang giữ trong phiên.
func (s *FillSession) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Submit ép kiểu và validate toàn bộ giá trị.
// Thành công: chuyển sang Submitted và trả về record hoàn chỉnh.
// Validate thất bại: quay về Ready, giữ nguyên giá trị đã nhập để người dùng sửa và submit lại.
//
// Returns:
// - map[string]interface{}: Record hoàn chỉnh nếu hợp lệ
// - []FieldError: Danh sách lỗi theo field nếu validate thất bại
// - error: Lỗi nếu phiên không ở trạng thái Ready
func (s *FillSession) Submit() (map[string]interface{}, []FieldError, error) {
	if s.state != StateReady {
		return nil, nil, common.NewError(
			common.ErrCodeFormSubmission,
			"Phiên nhập liệu không ở trạng thái sẵn sàng submit",
			common.StatusBadRequest,
			nil,
		)
	}

	s.state = StateSubmitting
	record, errs := Collect(s.fields, s.values)
	if len(errs) > 0 {
		s.errors = errs
		s.state = StateReady
		return nil, errs, nil
	}

	s.errors = nil
	s.state = StateSubmitted
	return record, nil, nil
}
