package doe

import "errors"

// ErrNoAirfoils is returned when a run is started without any airfoil.
var ErrNoAirfoils = errors.New("no airfoils supplied")
