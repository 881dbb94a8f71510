package waypoint

// yamlIndent is the indentation used by Encode.
const yamlIndent = 2

// stateNames names the waypoint states by derivative order, as they appear
// in the file.
var stateNames = [...]string{"position", "velocity", "acceleration", "jerk"}
