// Package format renders values following a country's conventions:
// currency amounts ([Currency]), word lists ([ToSentence]) and the field
// order of date and datetime pickers ([SelectDate], [SelectDatetime],
// [DatetimeSelect]). [Render] turns picker fields into <select> markup as a
// templ component.
//
// Formatters never fail. Input they cannot handle is returned as given.
package format
