// SPDX-License-Identifier: MIT
package stepper

// NewComponentFromLeaves exposes newComponent so tests can plug recording leaves.
var NewComponentFromLeaves = newComponent
