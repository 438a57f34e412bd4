// Package hugo exports the site definition as a Hugo configuration.
//
// The generator runs a fixed list of stages (prepare_output, generate_config,
// syntax_css, shortcodes). Each stage writes through an emit.Writer so the
// run report lists every produced file; stage timings are recorded in the
// report as well. Hugo itself is not invoked.
package hugo
