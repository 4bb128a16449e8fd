package animator

// Version is the module version reported by animctl.
const Version = "0.1.0"
