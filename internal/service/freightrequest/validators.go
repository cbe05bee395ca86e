package freightrequest

import "strings"

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

func isValidFreightType(freightType string) bool {
	switch freightType {
	case "road", "air", "sea", "rail":
		return true
	default:
		return false
	}
}

func isValidUrgency(urgency string) bool {
	switch urgency {
	case "normal", "urgent", "very_urgent":
		return true
	default:
		return false
	}
}
