package sflk

// Version of the SFLK front end.
const Version = "0.1.0"
