package weft

// Version is the current release of Weft.
const Version = "0.1.0"
