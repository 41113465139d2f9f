package studioapi

// Default failure messages per resource module, used when the backend body carries none.
var messagesVI = map[string]string{
	"default":       "Đã xảy ra lỗi, vui lòng thử lại",
	"network":       "Không thể kết nối đến máy chủ",
	"studios":       "Không thể tải danh sách studio",
	"equipment":     "Không thể tải danh sách thiết bị",
	"services":      "Không thể tải danh sách dịch vụ",
	"promotions":    "Mã khuyến mãi không hợp lệ",
	"bookings":      "Không thể xử lý đặt lịch",
	"set-designs":   "Không thể tải set design",
	"custom-design": "Không thể gửi yêu cầu thiết kế",
	"payments":      "Không thể tạo thanh toán",
	"reports":       "Không thể tải báo cáo",
	"comments":      "Không thể tải bình luận",
	"customers":     "Không thể tải danh sách khách hàng",
	"users":         "Không thể tải thông tin người dùng",
	"upload":        "Không thể tải ảnh lên",

	"promo-code-required": "Vui lòng nhập mã khuyến mãi",
	"promo-empty-order":   "Đơn hàng chưa có giá trị để áp dụng khuyến mãi",
}

var messagesEN = map[string]string{
	"default":       "Something went wrong, please try again",
	"network":       "Cannot reach the server",
	"studios":       "Failed to load studios",
	"equipment":     "Failed to load equipment",
	"services":      "Failed to load services",
	"promotions":    "Invalid promotion code",
	"bookings":      "Failed to process booking",
	"set-designs":   "Failed to load set designs",
	"custom-design": "Failed to submit design request",
	"payments":      "Failed to create payment",
	"reports":       "Failed to load reports",
	"comments":      "Failed to load comments",
	"customers":     "Failed to load customers",
	"users":         "Failed to load user",
	"upload":        "Failed to upload image",

	"promo-code-required": "Please enter a promotion code",
	"promo-empty-order":   "There is nothing to discount yet",
}

// Messages returns a copy of the default message table for locale ("vi" or "en").
func Messages(locale string) map[string]string {
	src := messagesVI
	if locale == "en" {
		src = messagesEN
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
