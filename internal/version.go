package internal

// Version is the version of the merklelog tools.
const Version = "0.1.0"
