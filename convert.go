// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

// Conversions between the types rescale the fractional part:
// widening multiplies it, narrowing truncates extra digits.
// The integral part is clamped to the target range.

// ToMedium converts v into Medium.
func (v Small) ToMedium() Medium {
	return mediumFrom(smallLayout.Rescale(v.num(), mediumLayout))
}

// ToModerate converts v into Moderate.
func (v Small) ToModerate() Moderate {
	return moderateFrom(smallLayout.Rescale(v.num(), moderateLayout))
}

// ToLarge converts v into Large.
func (v Small) ToLarge() Large {
	return largeFrom(smallLayout.Rescale(v.num(), largeLayout))
}

// ToSmall converts v into Small.
func (v Medium) ToSmall() Small {
	return smallFrom(mediumLayout.Rescale(v.num(), smallLayout))
}

// ToModerate converts v into Moderate.
func (v Medium) ToModerate() Moderate {
	return moderateFrom(mediumLayout.Rescale(v.num(), moderateLayout))
}

// ToLarge converts v into Large.
func (v Medium) ToLarge() Large {
	return largeFrom(mediumLayout.Rescale(v.num(), largeLayout))
}

// ToSmall converts v into Small.
func (v Moderate) ToSmall() Small {
	return smallFrom(moderateLayout.Rescale(v.num(), smallLayout))
}

// ToMedium converts v into Medium.
func (v Moderate) ToMedium() Medium {
	return mediumFrom(moderateLayout.Rescale(v.num(), mediumLayout))
}

// ToLarge converts v into Large.
func (v Moderate) ToLarge() Large {
	return largeFrom(moderateLayout.Rescale(v.num(), largeLayout))
}

// ToSmall converts v into Small.
func (v Large) ToSmall() Small {
	return smallFrom(largeLayout.Rescale(v.num(), smallLayout))
}

// ToMedium converts v into Medium.
func (v Large) ToMedium() Medium {
	return mediumFrom(largeLayout.Rescale(v.num(), mediumLayout))
}

// ToModerate converts v into Moderate.
func (v Large) ToModerate() Moderate {
	return moderateFrom(largeLayout.Rescale(v.num(), moderateLayout))
}
