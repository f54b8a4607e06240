package entity

// TimeSlots is the fixed catalog of bookable 1-hour intervals between
// 10:00 and 18:00. The booking form renders these choices; the server
// stores whatever label was submitted and does not enforce membership.
var TimeSlots = []string{
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"01:00 PM - 02:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
	"05:00 PM - 06:00 PM",
}
