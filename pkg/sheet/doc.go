// Package sheet reads style sheets from YAML or TOML and binds them to
// widgets.
//
// A sheet names style blocks, lists the bindings that attach them to a
// part and state, and may describe a widget tree to bind them to:
//
//	version: v1.0.0
//	styles:
//	  card: { bg_color: "#ffffff", bg_opa: 255, radius: 8, pad_all: 12 }
//	  card_pressed:
//	    bg_color: lightgray
//	    transition: { props: [bg_color], duration: 200ms, path: ease_out }
//	bindings:
//	  - { style: card, part: main, state: default }
//	  - { style: card_pressed, state: pressed, class: button }
//	tree:
//	  name: screen
//	  children:
//	    - { name: ok, class: button }
//
// Property names are the snake_case names of [style.Lookup]. Bindings are
// applied in file order, so later bindings win ties.
package sheet
