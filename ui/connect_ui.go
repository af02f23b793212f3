package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConnectUI is the server address panel shown before a match.
type ConnectUI struct {
	UI *ebitenui.UI

	OnConnect func(address string)
	OnQuit    func()

	defaultAddress string

	addressInput *widget.TextInput
	statusLabel  *widget.Label
	connectBtn   *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewConnectUI(defaultAddress string, onConnect func(address string), onQuit func()) (*ConnectUI, error) {
	ui := &ConnectUI{
		OnConnect:      onConnect,
		OnQuit:         onQuit,
		defaultAddress: defaultAddress,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *ConnectUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
	return nil
}

func (ui *ConnectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("BUILD FIGHT", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(ui.buildAddressPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("WASD move  mouse look  click fire  Q build  E edit  wheel piece  Esc release", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 160, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ConnectUI) buildAddressPanel() *widget.Container {
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Server:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	ui.addressInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(ui.defaultAddress),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			ui.submit()
		}),
	)
	panel.AddChild(ui.addressInput)

	ui.connectBtn = ui.newButton("Connect", color.RGBA{40, 100, 40, 255}, color.RGBA{60, 140, 60, 255}, ui.submit)
	panel.AddChild(ui.connectBtn)

	panel.AddChild(ui.newButton("Quit", color.RGBA{60, 60, 80, 255}, color.RGBA{80, 80, 100, 255}, func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	return panel
}

func (ui *ConnectUI) newButton(label string, idle, hover color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(idle),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(idle),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 255, 220, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *ConnectUI) submit() {
	if ui.OnConnect == nil || ui.connectBtn.GetWidget().Disabled {
		return
	}
	ui.OnConnect(AddressOrDefault(ui.addressInput.GetText(), ui.defaultAddress))
}

// AddressOrDefault returns the trimmed input, or def when the input is blank.
func AddressOrDefault(input, def string) string {
	if s := strings.TrimSpace(input); s != "" {
		return s
	}
	return def
}

func (ui *ConnectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *ConnectUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *ConnectUI) Update() {
	ui.UI.Update()
}
