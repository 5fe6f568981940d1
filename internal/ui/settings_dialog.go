package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/voxplay/voxplay/internal/config"
	"github.com/voxplay/voxplay/internal/layout"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// onApply runs after a save so the window can rebuild its layout draft.
	onApply func()

	// UI components
	legacyFSCheck       *widget.Check
	rememberCheck       *widget.Check
	enableOSCCheck      *widget.Check
	oscPositionSelect   *widget.Select
	leadingPlaceSelect  *widget.Select
	trailingPlaceSelect *widget.Select
	topBarPlaceSelect   *widget.Select
	bottomBarSelect     *widget.Select
	languageSelect      *widget.Select
}

// Placement option labels shown in the dialog
const (
	placementInsideLabel  = "Overlay (inside video)"
	placementOutsideLabel = "Resize window (outside video)"

	oscFloatingLabel = "Floating"
	oscTopLabel      = "Top bar"
	oscBottomLabel   = "Bottom bar"
)

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onApply func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onApply:  onApply,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.legacyFSCheck = widget.NewCheck(sd.loc.GetText(KeyLegacyFullScreen), nil)
	sd.rememberCheck = widget.NewCheck(sd.loc.GetText(KeyRememberGeometry), nil)
	sd.enableOSCCheck = widget.NewCheck(sd.loc.GetText(KeyShowControls), nil)

	placementOptions := []string{placementInsideLabel, placementOutsideLabel}
	sd.leadingPlaceSelect = widget.NewSelect(placementOptions, nil)
	sd.trailingPlaceSelect = widget.NewSelect(placementOptions, nil)
	sd.topBarPlaceSelect = widget.NewSelect(placementOptions, nil)
	sd.bottomBarSelect = widget.NewSelect(placementOptions, nil)

	sd.oscPositionSelect = widget.NewSelect(
		[]string{oscFloatingLabel, oscTopLabel, oscBottomLabel}, nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.loc.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyFullScreen)),
		widget.NewSeparator(),
		sd.legacyFSCheck,
		sd.rememberCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.loc.GetText(KeyShowControls)),
		widget.NewSeparator(),
		sd.enableOSCCheck,

		widget.NewLabel(sd.loc.GetText(KeyControlPosition)+":"),
		sd.oscPositionSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.loc.GetText(KeySettings)),
		widget.NewSeparator(),

		widget.NewLabel("Leading sidebar:"),
		sd.leadingPlaceSelect,

		widget.NewLabel("Trailing sidebar:"),
		sd.trailingPlaceSelect,

		widget.NewLabel("Top bar:"),
		sd.topBarPlaceSelect,

		widget.NewLabel("Bottom bar:"),
		sd.bottomBarSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.legacyFSCheck.SetChecked(sd.settings.GetLegacyFullScreen())
	sd.rememberCheck.SetChecked(sd.settings.GetRememberGeometry())
	sd.enableOSCCheck.SetChecked(sd.settings.GetEnableOSC())
	sd.oscPositionSelect.SetSelected(oscPositionLabel(sd.settings.GetOSCPosition()))
	sd.leadingPlaceSelect.SetSelected(placementLabel(sd.settings.GetSidebarPlacement(layout.EdgeLeading)))
	sd.trailingPlaceSelect.SetSelected(placementLabel(sd.settings.GetSidebarPlacement(layout.EdgeTrailing)))
	sd.topBarPlaceSelect.SetSelected(placementLabel(sd.settings.GetTopBarPlacement()))
	sd.bottomBarSelect.SetSelected(placementLabel(sd.settings.GetBottomBarPlacement()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetLegacyFullScreen(sd.legacyFSCheck.Checked)
	sd.settings.SetRememberGeometry(sd.rememberCheck.Checked)
	sd.settings.SetEnableOSC(sd.enableOSCCheck.Checked)

	if sd.oscPositionSelect.Selected != "" {
		sd.settings.SetOSCPosition(oscPositionFromLabel(sd.oscPositionSelect.Selected))
	}
	if sd.leadingPlaceSelect.Selected != "" {
		sd.settings.SetSidebarPlacement(layout.EdgeLeading, placementFromLabel(sd.leadingPlaceSelect.Selected))
	}
	if sd.trailingPlaceSelect.Selected != "" {
		sd.settings.SetSidebarPlacement(layout.EdgeTrailing, placementFromLabel(sd.trailingPlaceSelect.Selected))
	}
	if sd.topBarPlaceSelect.Selected != "" {
		sd.settings.SetTopBarPlacement(placementFromLabel(sd.topBarPlaceSelect.Selected))
	}
	if sd.bottomBarSelect.Selected != "" {
		sd.settings.SetBottomBarPlacement(placementFromLabel(sd.bottomBarSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
		sd.loc.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onApply != nil {
		sd.onApply()
	}

	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}

func placementLabel(p layout.Placement) string {
	if p == layout.PlacementInsideViewport {
		return placementInsideLabel
	}
	return placementOutsideLabel
}

func placementFromLabel(label string) layout.Placement {
	if label == placementInsideLabel {
		return layout.PlacementInsideViewport
	}
	return layout.PlacementOutsideViewport
}

func oscPositionLabel(pos layout.OSCPosition) string {
	switch pos {
	case layout.OSCPositionTop:
		return oscTopLabel
	case layout.OSCPositionBottom:
		return oscBottomLabel
	}
	return oscFloatingLabel
}

func oscPositionFromLabel(label string) layout.OSCPosition {
	switch label {
	case oscTopLabel:
		return layout.OSCPositionTop
	case oscBottomLabel:
		return layout.OSCPositionBottom
	}
	return layout.OSCPositionFloating
}
