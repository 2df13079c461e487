package internal

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
)

// Event is a processed input event expressed as a virtual button edge.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// Axis thresholds for treating analog input as button edges, in raw SDL
// units. Release sits below press for hysteresis.
const (
	axisPressThreshold   = 16384
	axisReleaseThreshold = 9830
)

// InputMapping describes how physical inputs map to virtual buttons.
// Names follow SDL conventions for keys and controller buttons; joystick
// buttons are numeric indices. Values are VirtualButton names.
type InputMapping struct {
	Keyboard        map[string]string `json:"keyboard,omitempty"`
	Controller      map[string]string `json:"controller,omitempty"`
	JoystickButtons map[string]string `json:"joystick_buttons,omitempty"`
}

// SaveToJSON writes the mapping to a file for hand editing.
func (m *InputMapping) SaveToJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

type inputProcessor struct {
	keyboard        map[sdl.Keycode]constants.VirtualButton
	controller      map[uint8]constants.VirtualButton
	joystickButtons map[uint8]constants.VirtualButton

	controllers map[sdl.JoystickID]*sdl.GameController
	joysticks   map[sdl.JoystickID]*sdl.Joystick

	axisHeld map[axisKey]bool
	prevHat  map[sdl.JoystickID]uint8
}

type axisKey struct {
	axis     uint8
	positive bool
}

var (
	processor       *inputProcessor
	processorOnce   sync.Once
	flipFaceButtons bool
	customMapping   *InputMapping
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B) instead
// of the default Nintendo-style swap. Takes effect when the mapping is
// built, so call before Init.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

// SetInputMappingBytes loads a custom input mapping from JSON bytes,
// overriding individual default bindings. Call before Init.
func SetInputMappingBytes(data []byte) {
	var mapping InputMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		GetInternalLogger().Error("Failed to parse input mapping", "error", err)
		return
	}
	customMapping = &mapping
}

// InitInputProcessor builds the input mapping and opens any controllers
// already attached.
func InitInputProcessor() {
	processorOnce.Do(func() {
		if os.Getenv(constants.FlipFaceButtonsEnvVar) != "" {
			flipFaceButtons = true
		}

		processor = &inputProcessor{
			keyboard:        defaultKeyboardMapping(),
			controller:      defaultControllerMapping(flipFaceButtons),
			joystickButtons: defaultJoystickMapping(flipFaceButtons),
			controllers:     make(map[sdl.JoystickID]*sdl.GameController),
			joysticks:       make(map[sdl.JoystickID]*sdl.Joystick),
			axisHeld:        make(map[axisKey]bool),
			prevHat:         make(map[sdl.JoystickID]uint8),
		}

		if customMapping != nil {
			processor.applyMapping(customMapping)
		}

		for i := 0; i < sdl.NumJoysticks(); i++ {
			processor.openDevice(i)
		}
	})
}

// GetInputProcessor returns the shared input processor. Valid after
// InitInputProcessor.
func GetInputProcessor() *inputProcessor {
	return processor
}

// CloseAllControllers releases every opened game controller and joystick.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, controller := range processor.controllers {
		controller.Close()
		delete(processor.controllers, id)
	}
	for id, joystick := range processor.joysticks {
		joystick.Close()
		delete(processor.joysticks, id)
	}
}

func defaultKeyboardMapping() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_SPACE:     constants.VirtualButtonA,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_x:         constants.VirtualButtonX,
		sdl.K_y:         constants.VirtualButtonY,
		sdl.K_PAGEUP:    constants.VirtualButtonL1,
		sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_s:         constants.VirtualButtonStart,
		sdl.K_m:         constants.VirtualButtonMenu,
		sdl.K_F1:        constants.VirtualButtonF1,
		sdl.K_F2:        constants.VirtualButtonF2,
	}
}

// Handhelds in this device class print Nintendo-style labels, so the SDL
// south button reads "B" on the shell. The default mapping follows the
// printed labels; flip selects SDL's own layout instead.
func defaultControllerMapping(flip bool) map[uint8]constants.VirtualButton {
	mapping := map[uint8]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
		sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
	}

	if flip {
		mapping[sdl.CONTROLLER_BUTTON_A] = constants.VirtualButtonA
		mapping[sdl.CONTROLLER_BUTTON_B] = constants.VirtualButtonB
		mapping[sdl.CONTROLLER_BUTTON_X] = constants.VirtualButtonX
		mapping[sdl.CONTROLLER_BUTTON_Y] = constants.VirtualButtonY
	} else {
		mapping[sdl.CONTROLLER_BUTTON_A] = constants.VirtualButtonB
		mapping[sdl.CONTROLLER_BUTTON_B] = constants.VirtualButtonA
		mapping[sdl.CONTROLLER_BUTTON_X] = constants.VirtualButtonY
		mapping[sdl.CONTROLLER_BUTTON_Y] = constants.VirtualButtonX
	}

	return mapping
}

func defaultJoystickMapping(flip bool) map[uint8]constants.VirtualButton {
	mapping := map[uint8]constants.VirtualButton{
		4: constants.VirtualButtonL1,
		5: constants.VirtualButtonR1,
		6: constants.VirtualButtonSelect,
		7: constants.VirtualButtonStart,
		8: constants.VirtualButtonMenu,
	}

	if flip {
		mapping[0] = constants.VirtualButtonA
		mapping[1] = constants.VirtualButtonB
		mapping[2] = constants.VirtualButtonX
		mapping[3] = constants.VirtualButtonY
	} else {
		mapping[0] = constants.VirtualButtonB
		mapping[1] = constants.VirtualButtonA
		mapping[2] = constants.VirtualButtonY
		mapping[3] = constants.VirtualButtonX
	}

	return mapping
}

var virtualButtonNames = map[string]constants.VirtualButton{}

func init() {
	for vb := constants.VirtualButtonUnassigned; vb <= constants.VirtualButtonPower; vb++ {
		virtualButtonNames[vb.GetName()] = vb
	}
}

func (p *inputProcessor) applyMapping(mapping *InputMapping) {
	for keyName, buttonName := range mapping.Keyboard {
		vb, ok := virtualButtonNames[buttonName]
		if !ok {
			continue
		}
		p.keyboard[sdl.GetKeyFromName(keyName)] = vb
	}
	for buttonName, vbName := range mapping.Controller {
		vb, ok := virtualButtonNames[vbName]
		if !ok {
			continue
		}
		if code := sdl.GameControllerGetButtonFromString(buttonName); code != sdl.CONTROLLER_BUTTON_INVALID {
			p.controller[uint8(code)] = vb
		}
	}
	for index, vbName := range mapping.JoystickButtons {
		vb, ok := virtualButtonNames[vbName]
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(index); err == nil && n >= 0 && n < 256 {
			p.joystickButtons[uint8(n)] = vb
		}
	}
}

func (p *inputProcessor) openDevice(index int) {
	if sdl.IsGameController(index) {
		controller := sdl.GameControllerOpen(index)
		if controller == nil {
			return
		}
		id := controller.Joystick().InstanceID()
		p.controllers[id] = controller
		GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
		return
	}

	joystick := sdl.JoystickOpen(index)
	if joystick == nil {
		return
	}
	p.joysticks[joystick.InstanceID()] = joystick
	GetInternalLogger().Debug("Opened joystick", "index", index, "name", joystick.Name())
}

// HandleDeviceEvent reacts to controller/joystick hotplug events. The main
// loop forwards these separately from button events.
func (p *inputProcessor) HandleDeviceEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openDevice(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if controller, ok := p.controllers[e.Which]; ok {
				controller.Close()
				delete(p.controllers, e.Which)
			}
		}
	case *sdl.JoyDeviceAddedEvent:
		p.openDevice(int(e.Which))
	case *sdl.JoyDeviceRemovedEvent:
		if joystick, ok := p.joysticks[e.Which]; ok {
			joystick.Close()
			delete(p.joysticks, e.Which)
		}
	}
}

// ProcessSDLEvent converts a raw SDL input event into a virtual button edge.
// Returns nil for events that do not map to a virtual button.
func (p *inputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.keyboard[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := p.controller[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(e.Axis, e.Value)

	case *sdl.JoyButtonEvent:
		// Game controllers surface their buttons through controller events;
		// ignore the duplicate joystick stream for those devices.
		if _, isController := p.controllers[e.Which]; isController {
			return nil
		}
		button, ok := p.joystickButtons[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.JOYBUTTONDOWN}

	case *sdl.JoyHatEvent:
		if _, isController := p.controllers[e.Which]; isController {
			return nil
		}
		return p.processHat(e.Which, e.Value)

	case *sdl.JoyAxisEvent:
		if _, isController := p.controllers[e.Which]; isController {
			return nil
		}
		return p.processAxis(e.Axis, e.Value)
	}

	return nil
}

// processAxis turns analog movement into press/release edges with
// hysteresis. Axis 0/1 are the stick directions, 4/5 the triggers.
func (p *inputProcessor) processAxis(axis uint8, value int16) *Event {
	var positive, negative constants.VirtualButton

	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTX:
		positive, negative = constants.VirtualButtonRight, constants.VirtualButtonLeft
	case sdl.CONTROLLER_AXIS_LEFTY:
		positive, negative = constants.VirtualButtonDown, constants.VirtualButtonUp
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		positive, negative = constants.VirtualButtonL2, constants.VirtualButtonUnassigned
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		positive, negative = constants.VirtualButtonR2, constants.VirtualButtonUnassigned
	default:
		return nil
	}

	if ev := p.axisEdge(axisKey{axis, true}, positive, int32(value) >= axisPressThreshold, int32(value) < axisReleaseThreshold); ev != nil {
		return ev
	}
	if negative == constants.VirtualButtonUnassigned {
		return nil
	}
	return p.axisEdge(axisKey{axis, false}, negative, int32(value) <= -axisPressThreshold, int32(value) > -axisReleaseThreshold)
}

func (p *inputProcessor) axisEdge(key axisKey, button constants.VirtualButton, pressed, released bool) *Event {
	held := p.axisHeld[key]
	if pressed && !held {
		p.axisHeld[key] = true
		return &Event{Button: button, Pressed: true}
	}
	if released && held {
		p.axisHeld[key] = false
		return &Event{Button: button, Pressed: false}
	}
	return nil
}

var hatDirections = []struct {
	mask   uint8
	button constants.VirtualButton
}{
	{sdl.HAT_UP, constants.VirtualButtonUp},
	{sdl.HAT_DOWN, constants.VirtualButtonDown},
	{sdl.HAT_LEFT, constants.VirtualButtonLeft},
	{sdl.HAT_RIGHT, constants.VirtualButtonRight},
}

func (p *inputProcessor) processHat(which sdl.JoystickID, value uint8) *Event {
	prev := p.prevHat[which]
	p.prevHat[which] = value

	for _, dir := range hatDirections {
		was := prev&dir.mask != 0
		is := value&dir.mask != 0
		if is && !was {
			return &Event{Button: dir.button, Pressed: true}
		}
		if was && !is {
			return &Event{Button: dir.button, Pressed: false}
		}
	}
	return nil
}
