package netlist

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096/semisim/internal/consts"
	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
)

type NetlistData struct {
	Title    string                       // Deck title
	Elements []Element                    // Device instances in deck order
	Models   map[string]device.ModelParam // Model parameters
	Sweeps   map[string]SweepParam        // .dc sweeps by element name
	Temp     float64                      // .temp in Kelvin
	HasTemp  bool
}

type Element struct {
	Type   string            // Device letter (D, Q, J, N)
	Name   string            // Instance name
	Model  string            // Model card name
	Params map[string]string // Instance parameters
	Line   int
}

// SweepParam is a SPICE style .dc sweep: start, stop and increment.
type SweepParam struct {
	Start     float64
	Stop      float64
	Increment float64
	Line      int
}

// ParseError carries the deck line of a malformed statement.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"M":   1e-3,  // milli
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var (
	valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)((?i:meg)|[TGMKkmunpf])?[a-zA-Z]*$`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// modelTypes maps .model types to the element letter that may use them.
var modelTypes = map[string]string{
	"D":    "D",
	"NPN":  "Q",
	"NJF":  "J",
	"NANO": "N",
}

func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	netlistData := &NetlistData{
		Models: make(map[string]device.ModelParam),
		Sweeps: make(map[string]SweepParam),
	}

	// Title or comment
	lineNo := 0
	if scanner.Scan() {
		lineNo++
		netlistData.Title = strings.TrimPrefix(scanner.Text(), "*")
		netlistData.Title = strings.TrimSpace(netlistData.Title)
	}

	var currentLine string
	var currentNo int
	flush := func() error {
		if currentLine == "" {
			return nil
		}
		err := parseLine(netlistData, currentLine, currentNo)
		if err != nil {
			err = &ParseError{Line: currentNo, Text: currentLine, Err: err}
		}
		currentLine = ""
		return err
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Inline comment
		if idx := strings.IndexAny(line, "*;"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if len(line) == 0 {
			continue
		}

		// Line continuation
		if strings.HasPrefix(line, "+") {
			if currentLine == "" {
				return nil, &ParseError{Line: lineNo, Text: line, Err: errors.New("continuation without statement")}
			}
			currentLine += " " + strings.TrimSpace(line[1:])
			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}

		if strings.EqualFold(line, ".end") {
			return netlistData, nil
		}
		currentLine, currentNo = line, lineNo
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return netlistData, nil
}

func parseLine(netlistData *NetlistData, line string, lineNo int) error {
	line = spaceRe.ReplaceAllString(line, " ")

	if strings.HasPrefix(line, ".") {
		return parseDotOperator(netlistData, line, lineNo)
	}

	element, err := parseElement(line)
	if err != nil {
		return err
	}
	element.Line = lineNo
	for _, e := range netlistData.Elements {
		if strings.EqualFold(e.Name, element.Name) {
			return fmt.Errorf("duplicate element %s", element.Name)
		}
	}

	netlistData.Elements = append(netlistData.Elements, *element)
	return nil
}

// Parse .model, .dc, .temp
func parseDotOperator(netlistData *NetlistData, line string, lineNo int) error {
	var err error

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ".model":
		return parseModel(netlistData, fields[1:])

	case ".dc":
		if len(fields) < 5 {
			return fmt.Errorf("insufficient DC sweep parameters, need element, start, stop and increment")
		}
		var param SweepParam
		param.Start, err = ParseValue(fields[2])
		if err != nil {
			return fmt.Errorf("invalid start value: %w", err)
		}
		param.Stop, err = ParseValue(fields[3])
		if err != nil {
			return fmt.Errorf("invalid stop value: %w", err)
		}
		param.Increment, err = ParseValue(fields[4])
		if err != nil {
			return fmt.Errorf("invalid increment value: %w", err)
		}
		if param.Increment == 0 {
			return fmt.Errorf("increment must be non-zero")
		}
		if n := param.count(); n > curve.MaxPoints {
			return fmt.Errorf("%w: %.0f points exceed the limit of %d", curve.ErrInvalidSweep, n, curve.MaxPoints)
		}
		param.Line = lineNo
		netlistData.Sweeps[strings.ToUpper(fields[1])] = param

	case ".temp":
		if len(fields) < 2 {
			return fmt.Errorf("missing temperature")
		}
		celsius, err := ParseValue(fields[1])
		if err != nil {
			return fmt.Errorf("invalid temperature: %w", err)
		}
		netlistData.Temp = celsius + consts.KELVIN
		netlistData.HasTemp = true

	default:
		return fmt.Errorf("unsupported control statement: %s", fields[0])
	}

	return nil
}

func parseModel(netlistData *NetlistData, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("insufficient model parameters")
	}

	modelName := fields[0]

	// Split type from an attached open paren: D(is=1p
	rest := strings.Join(fields[1:], " ")
	modelType := rest
	paramStr := ""
	if idx := strings.IndexAny(rest, "( "); idx >= 0 {
		modelType = rest[:idx]
		paramStr = rest[idx:]
	}
	modelType = strings.ToUpper(strings.TrimSpace(modelType))
	if _, ok := modelTypes[modelType]; !ok {
		return fmt.Errorf("unsupported model type: %s", modelType)
	}

	paramStr = strings.TrimSpace(paramStr)
	paramStr = strings.TrimPrefix(paramStr, "(")
	paramStr = strings.TrimSuffix(paramStr, ")")

	params := make(map[string]float64)
	for _, pair := range strings.Fields(paramStr) {
		name, value, err := parseParam(pair)
		if err != nil {
			return err
		}
		params[name], err = ParseValue(value)
		if err != nil {
			return fmt.Errorf("invalid parameter value %s: %w", pair, err)
		}
	}

	netlistData.Models[strings.ToUpper(modelName)] = device.ModelParam{
		Type:   modelType,
		Name:   modelName,
		Params: params,
	}

	return nil
}

// Parse device instance: NAME MODEL [key=value ...]
func parseElement(line string) (*Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("invalid element format, need name and model")
	}

	elem := &Element{
		Name:   fields[0],
		Type:   strings.ToUpper(string(fields[0][0])),
		Model:  fields[1],
		Params: make(map[string]string),
	}
	if _, ok := device.New(elem.Type, elem.Name); !ok {
		return nil, fmt.Errorf("unsupported element type: %s", elem.Type)
	}

	for _, pair := range fields[2:] {
		name, value, err := parseParam(pair)
		if err != nil {
			return nil, err
		}
		elem.Params[name] = value
	}

	return elem, nil
}

func parseParam(pair string) (string, string, error) {
	parts := strings.SplitN(pair, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid parameter %q, want name=value", pair)
	}
	return strings.ToLower(strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1]), nil
}

// ParseValue - Parse value and factor. 1k -> 1000, 10uA -> 1e-5
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if factor := matches[2]; factor != "" {
		if strings.EqualFold(factor, "meg") {
			factor = "meg"
		}
		if multiplier, ok := unitMap[factor]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

// ParseValueList parses a comma separated list of values: 10u,20u,30u
func ParseValueList(val string) ([]float64, error) {
	values := make([]float64, 0)
	for _, field := range strings.Split(val, ",") {
		if field = strings.TrimSpace(field); field == "" {
			continue
		}
		v, err := ParseValue(field)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (p SweepParam) count() float64 {
	return math.Round(math.Abs((p.Stop-p.Start)/p.Increment)) + 1
}

// Sweep converts a .dc statement into sample points. Counts above
// curve.MaxPoints are clamped to one past the limit so validation rejects
// them.
func (p SweepParam) Sweep() curve.Sweep {
	n := p.count()
	if !(n <= curve.MaxPoints) {
		n = curve.MaxPoints + 1
	}
	return curve.NewSweep(p.Start, p.Stop, int(n))
}

// SweepFor returns the .dc sweep of an element, or the model default.
func (n *NetlistData) SweepFor(name string, model device.Model) curve.Sweep {
	if p, ok := n.Sweeps[strings.ToUpper(name)]; ok {
		return p.Sweep()
	}
	return model.DefaultSweep()
}
