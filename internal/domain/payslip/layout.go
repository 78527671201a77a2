package payslip

import (
	"fmt"
	"time"

	"idms/internal/platform/money"
)

// Fallbacks holds the text drawn when an employee field is absent.
type Fallbacks struct {
	Text      string `yaml:"text"`
	WorkDays  string `yaml:"workDays"`
	LossOfPay string `yaml:"lossOfPay"`
}

// Layout is the page geometry and styling of a payslip. Units are millimetres.
type Layout struct {
	PageWidth         float64        `yaml:"pageWidth"`
	PageHeight        float64        `yaml:"pageHeight"`
	Margin            float64        `yaml:"margin"`
	InitialY          float64        `yaml:"initialY"`
	MinHeaderHeight   float64        `yaml:"minHeaderHeight"`
	LineHeight        float64        `yaml:"lineHeight"`
	AddressLineHeight float64        `yaml:"addressLineHeight"`
	TitleBarHeight    float64        `yaml:"titleBarHeight"`
	LabelOffset       float64        `yaml:"labelOffset"`
	ValueOffset       float64        `yaml:"valueOffset"`
	CellPadding       float64        `yaml:"cellPadding"`
	FooterOffset      float64        `yaml:"footerOffset"`
	FontFamily        string         `yaml:"fontFamily"`
	CompanyFontSize   float64        `yaml:"companyFontSize"`
	TitleFontSize     float64        `yaml:"titleFontSize"`
	BodyFontSize      float64        `yaml:"bodyFontSize"`
	FooterFontSize    float64        `yaml:"footerFontSize"`
	FillGray          int            `yaml:"fillGray"`
	Grouping          money.Grouping `yaml:"grouping"`
	Disclaimer        string         `yaml:"disclaimer"`
	Fallbacks         Fallbacks      `yaml:"fallbacks"`
	Compress          bool           `yaml:"compress"`
	CreationDate      time.Time      `yaml:"-"`
}

// DefaultLayout is an A4 portrait page with 10mm margins.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:         210,
		PageHeight:        297,
		Margin:            10,
		InitialY:          15,
		MinHeaderHeight:   25,
		LineHeight:        6,
		AddressLineHeight: 4,
		TitleBarHeight:    7,
		LabelOffset:       2,
		ValueOffset:       38,
		CellPadding:       2,
		FooterOffset:      8,
		FontFamily:        "Helvetica",
		CompanyFontSize:   14,
		TitleFontSize:     11,
		BodyFontSize:      9,
		FooterFontSize:    8,
		FillGray:          230,
		Grouping:          money.GroupingIndian,
		Disclaimer:        "This is a system-generated payslip and does not require a signature.",
		Fallbacks: Fallbacks{
			Text:      "N/A",
			WorkDays:  "N/A",
			LossOfPay: "0",
		},
		Compress:     true,
		CreationDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (l Layout) ContentWidth() float64 {
	return l.PageWidth - 2*l.Margin
}

func (l Layout) CenterX() float64 {
	return l.PageWidth / 2
}

func (l Layout) Validate() error {
	switch {
	case l.PageWidth <= 2*l.Margin || l.PageHeight <= 0:
		return fmt.Errorf("%w: page %.1fx%.1f with margin %.1f", ErrInvalidLayout, l.PageWidth, l.PageHeight, l.Margin)
	case l.Margin < 0 || l.InitialY < 0:
		return fmt.Errorf("%w: margin and initialY must not be negative", ErrInvalidLayout)
	case l.LineHeight <= 0 || l.AddressLineHeight <= 0 || l.TitleBarHeight <= 0:
		return fmt.Errorf("%w: line heights must be positive", ErrInvalidLayout)
	case l.CompanyFontSize <= 0 || l.TitleFontSize <= 0 || l.BodyFontSize <= 0 || l.FooterFontSize <= 0:
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidLayout)
	case l.FillGray < 0 || l.FillGray > 255:
		return fmt.Errorf("%w: fillGray must be within 0..255", ErrInvalidLayout)
	case !l.Grouping.Valid():
		return fmt.Errorf("%w: unknown grouping %q", ErrInvalidLayout, l.Grouping)
	case l.FontFamily == "":
		return fmt.Errorf("%w: fontFamily is required", ErrInvalidLayout)
	}
	return nil
}
