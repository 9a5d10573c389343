package core

import "strconv"

// Parameter describes a single value shown on the debug panel.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a component exposes at one instant.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by components the debug panel can inspect.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam formats an integer parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// FloatParam formats a floating-point parameter with the given precision.
func FloatParam(key, label string, v float64, prec int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'f', prec, 64)}
}

// BoolParam formats a boolean parameter as on/off.
func BoolParam(key, label string, v bool) Parameter {
	value := "off"
	if v {
		value = "on"
	}
	return Parameter{Key: key, Label: label, Value: value}
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
