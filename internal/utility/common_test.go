package utility

import (
	"testing"
	"time"
)

// Timestamp mili giây phải thống nhất trên toàn hệ thống: marker do service
// tính ra phải khớp từng giá trị với timestamp mà tầng base service ghi xuống
// DB tại cùng thời điểm, kể cả khi thời điểm đó có phần lẻ dưới mili giây.
func TestUnixMilli_KhopVoiTimestampStdlib(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 700_000, time.UTC),   // 0.7ms: làm tròn sẽ lệch 1ms
		time.Date(2026, 1, 1, 0, 0, 0, 1_700_000, time.UTC), // 1.7ms
		time.Date(2026, 1, 1, 0, 0, 0, 999_999, time.UTC),
	}

	for _, tm := range cases {
		if got, want := UnixMilli(tm), tm.UnixMilli(); got != want {
			t.Errorf("UnixMilli(%v) = %d, muốn %d (phải khớp với time.Time.UnixMilli)", tm, got, want)
		}
	}
}

func TestCurrentTimeInMilli_KhongLonHonHienTai(t *testing.T) {
	before := time.Now().UnixMilli()
	got := CurrentTimeInMilli()
	after := time.Now().UnixMilli()

	if got < before || got > after {
		t.Errorf("CurrentTimeInMilli() = %d, muốn trong khoảng [%d, %d]", got, before, after)
	}
}
