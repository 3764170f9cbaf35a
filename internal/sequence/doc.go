// Package sequence turns the text of the input field into an ordered list of
// integers and back. It also holds the character filter applied by the entry
// widget and the random value generator behind the "generate" action.
package sequence
