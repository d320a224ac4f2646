package renderer

import "github.com/epeers/rsiv/internal/models"

// Labels holds the user facing strings of a report in one language.
type Labels struct {
	Title           string
	WeightedScore   string
	SuggestedRatio  string
	TotalValue      string
	StockWeight     string
	CashWeight      string
	Recommendation  string
	Adjust          string // "%s stock weight by %s"
	WeakHeader      string
	WeakAdvice      string
	NoWeak          string
	NoWeakShort     string
	BreakdownHeader string
	Holding         string
	Score           string
	Invested        string
	TotalInvested   string
	Weight          string
	Contribution    string
	Weak            string
	Total           string
	Cash            string
	Action          string
	Amount          string
	WeakNotes       string
	Actions         map[models.RecommendedAction]string
	Form            FormLabels
}

// FormLabels holds the strings of the web input form and result page.
type FormLabels struct {
	PageTitle    string
	Intro        string
	HoldingCount string
	Apply        string
	SafetyLevel  string
	CashBalance  string
	Extended     string
	Submit       string
	DownloadCSV  string
	DownloadPDF  string
	NewAnalysis  string
}

const (
	LangVietnamese = "vi"
	LangEnglish    = "en"
)

var vietnamese = Labels{
	Title:           "KẾT QUẢ",
	WeightedScore:   "Giá trị trung bình RSIV của danh mục",
	SuggestedRatio:  "Tỷ trọng gợi ý nắm giữ",
	TotalValue:      "Tổng giá trị danh mục hiện tại",
	StockWeight:     "Tỷ trọng thực tế của cổ phiếu",
	CashWeight:      "Tỷ trọng tiền mặt",
	Recommendation:  "Gợi ý điều chỉnh",
	Adjust:          "%s tỷ trọng cổ phiếu với số tiền = %s",
	WeakHeader:      "Các cổ phiếu yếu (RSIV < 50)",
	WeakAdvice:      "Gợi ý: cân nhắc chuyển sang cổ phiếu khỏe hơn.",
	NoWeak:          "Không có cổ phiếu yếu (tất cả RSIV >= 50).",
	NoWeakShort:     "Không có cổ phiếu yếu.",
	BreakdownHeader: "Chi tiết từng cổ phiếu",
	Holding:         "Cổ phiếu",
	Score:           "RSIV",
	Invested:        "Số tiền đầu tư",
	TotalInvested:   "Tổng số tiền đầu tư vào cổ phiếu",
	Weight:          "Tỷ trọng",
	Contribution:    "Đóng góp RSIV",
	Weak:            "Yếu",
	Total:           "Tổng",
	Cash:            "Tiền mặt",
	Action:          "Hành động",
	Amount:          "Số tiền cần điều chỉnh",
	WeakNotes:       "Nhận xét về cổ phiếu yếu:",
	Actions: map[models.RecommendedAction]string{
		models.ActionIncrease: "Tăng",
		models.ActionDecrease: "Giảm",
		models.ActionHold:     "Giữ nguyên",
	},
	Form: FormLabels{
		PageTitle:    "RSIV - Tính tỷ trọng danh mục",
		Intro:        "Nhập RSIV và số tiền đầu tư cho từng cổ phiếu:",
		HoldingCount: "Số lượng cổ phiếu:",
		Apply:        "Cập nhật",
		SafetyLevel:  "Mức an toàn của VnIndex (0-9):",
		CashBalance:  "Số tiền mặt hiện có:",
		Extended:     "Chi tiết từng cổ phiếu",
		Submit:       "Tính toán",
		DownloadCSV:  "Tải file CSV kết quả",
		DownloadPDF:  "Tải file PDF kết quả",
		NewAnalysis:  "Phân tích mới",
	},
}

var english = Labels{
	Title:           "RESULTS",
	WeightedScore:   "Portfolio weighted RSIV",
	SuggestedRatio:  "Suggested holding ratio",
	TotalValue:      "Current total portfolio value",
	StockWeight:     "Actual stock weight",
	CashWeight:      "Cash weight",
	Recommendation:  "Suggested adjustment",
	Adjust:          "%s stock weight by %s",
	WeakHeader:      "Weak holdings (RSIV < 50)",
	WeakAdvice:      "Suggestion: consider switching to a stronger stock.",
	NoWeak:          "No weak holdings (all RSIV >= 50).",
	NoWeakShort:     "No weak holdings.",
	BreakdownHeader: "Per-holding breakdown",
	Holding:         "Holding",
	Score:           "RSIV",
	Invested:        "Invested",
	TotalInvested:   "Total invested in stocks",
	Weight:          "Weight",
	Contribution:    "RSIV contribution",
	Weak:            "Weak",
	Total:           "Total",
	Cash:            "Cash",
	Action:          "Action",
	Amount:          "Amount to adjust",
	WeakNotes:       "Notes on weak holdings:",
	Actions: map[models.RecommendedAction]string{
		models.ActionIncrease: "Increase",
		models.ActionDecrease: "Decrease",
		models.ActionHold:     "Hold",
	},
	Form: FormLabels{
		PageTitle:    "RSIV - Portfolio weighting",
		Intro:        "Enter the RSIV and invested amount of each holding:",
		HoldingCount: "Number of holdings:",
		Apply:        "Apply",
		SafetyLevel:  "Index safety level (0-9):",
		CashBalance:  "Cash balance:",
		Extended:     "Per-holding breakdown",
		Submit:       "Calculate",
		DownloadCSV:  "Download CSV",
		DownloadPDF:  "Download PDF",
		NewAnalysis:  "New analysis",
	},
}

// LabelsFor returns the labels of lang, falling back to Vietnamese.
func LabelsFor(lang string) Labels {
	if lang == LangEnglish {
		return english
	}
	return vietnamese
}

// ValidLang reports whether lang has a label set
func ValidLang(lang string) bool {
	return lang == LangVietnamese || lang == LangEnglish
}
