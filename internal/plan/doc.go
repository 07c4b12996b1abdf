// Package plan describes the fixed cluster topology machines are generated for.
//
// A [Plan] has Masters master slots followed by Workers worker slots. Slots are
// numbered from 1 and that ordinal, together with the user name, determines
// which cloud instance fills the slot.
package plan
