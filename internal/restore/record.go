package restore

import (
	"time"

	"github.com/google/uuid"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
)

// Record is the flat serialized form of one window's geometry in one mode.
// Numeric fields are kept flat so the file stays hand-editable.
type Record struct {
	WindowID string `yaml:"window_id"`
	Mode     string `yaml:"mode"`

	FrameX      float64 `yaml:"frame_x"`
	FrameY      float64 `yaml:"frame_y"`
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`

	ScreenX      float64 `yaml:"screen_x,omitempty"`
	ScreenY      float64 `yaml:"screen_y,omitempty"`
	ScreenWidth  float64 `yaml:"screen_width,omitempty"`
	ScreenHeight float64 `yaml:"screen_height,omitempty"`

	OutsideLeading  float64 `yaml:"outside_leading"`
	OutsideTrailing float64 `yaml:"outside_trailing"`
	OutsideTop      float64 `yaml:"outside_top"`
	OutsideBottom   float64 `yaml:"outside_bottom"`
	InsideLeading   float64 `yaml:"inside_leading"`
	InsideTrailing  float64 `yaml:"inside_trailing"`
	InsideTop       float64 `yaml:"inside_top"`
	InsideBottom    float64 `yaml:"inside_bottom"`

	VideoAspect float64 `yaml:"video_aspect"`
	VideoWidth  float64 `yaml:"video_width"`
	VideoHeight float64 `yaml:"video_height"`
	TopMargin   float64 `yaml:"top_margin,omitempty"`

	MarginTop      float64 `yaml:"margin_top,omitempty"`
	MarginBottom   float64 `yaml:"margin_bottom,omitempty"`
	MarginLeading  float64 `yaml:"margin_leading,omitempty"`
	MarginTrailing float64 `yaml:"margin_trailing,omitempty"`

	// Active sidebar tabs at save time, so reopening the mode restores them.
	LeadingTab  string `yaml:"leading_tab,omitempty"`
	TrailingTab string `yaml:"trailing_tab,omitempty"`

	SavedAt time.Time `yaml:"saved_at"`
}

// NewRecord flattens a geometry into its serialized form.
func NewRecord(windowID string, mode layout.WindowMode, g geometry.WindowGeometry) Record {
	return Record{
		WindowID: windowID,
		Mode:     mode.String(),

		FrameX:      g.Frame.Origin.X,
		FrameY:      g.Frame.Origin.Y,
		FrameWidth:  g.Frame.Size.Width,
		FrameHeight: g.Frame.Size.Height,

		ScreenX:      g.ScreenFrame.Origin.X,
		ScreenY:      g.ScreenFrame.Origin.Y,
		ScreenWidth:  g.ScreenFrame.Size.Width,
		ScreenHeight: g.ScreenFrame.Size.Height,

		OutsideLeading:  g.OutsideBars.Leading,
		OutsideTrailing: g.OutsideBars.Trailing,
		OutsideTop:      g.OutsideBars.Top,
		OutsideBottom:   g.OutsideBars.Bottom,
		InsideLeading:   g.InsideBars.Leading,
		InsideTrailing:  g.InsideBars.Trailing,
		InsideTop:       g.InsideBars.Top,
		InsideBottom:    g.InsideBars.Bottom,

		VideoAspect: g.VideoAspect,
		VideoWidth:  g.VideoSize.Width,
		VideoHeight: g.VideoSize.Height,
		TopMargin:   g.TopMargin,

		MarginTop:      g.VideoMargins.Top,
		MarginBottom:   g.VideoMargins.Bottom,
		MarginLeading:  g.VideoMargins.Leading,
		MarginTrailing: g.VideoMargins.Trailing,

		SavedAt: time.Now(),
	}
}

// Geometry rebuilds the window geometry the record was taken from. Fields are
// returned verbatim so an unchanged record reproduces the saved geometry
// exactly; consumers re-clamp the aspect when they re-fit the video.
func (r Record) Geometry() geometry.WindowGeometry {
	return geometry.WindowGeometry{
		Frame:       geometry.NewRect(r.FrameX, r.FrameY, r.FrameWidth, r.FrameHeight),
		ScreenFrame: geometry.NewRect(r.ScreenX, r.ScreenY, r.ScreenWidth, r.ScreenHeight),
		OutsideBars: geometry.Insets{
			Leading:  r.OutsideLeading,
			Trailing: r.OutsideTrailing,
			Top:      r.OutsideTop,
			Bottom:   r.OutsideBottom,
		},
		InsideBars: geometry.Insets{
			Leading:  r.InsideLeading,
			Trailing: r.InsideTrailing,
			Top:      r.InsideTop,
			Bottom:   r.InsideBottom,
		},
		VideoAspect: r.VideoAspect,
		VideoSize:   geometry.Size{Width: r.VideoWidth, Height: r.VideoHeight},
		VideoMargins: geometry.Insets{
			Top:      r.MarginTop,
			Bottom:   r.MarginBottom,
			Leading:  r.MarginLeading,
			Trailing: r.MarginTrailing,
		},
		TopMargin: r.TopMargin,
	}
}

// Tabs returns the sidebar tabs active when the record was saved.
func (r Record) Tabs() (leading, trailing layout.Tab) {
	return layout.Tab(r.LeadingTab), layout.Tab(r.TrailingTab)
}

// NewWindowID mints a sortable unique ID for a player window.
func NewWindowID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
