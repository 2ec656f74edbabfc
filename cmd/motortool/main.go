// Command motortool inspects the motor model offline: registry, telemetry,
// mesh export and rotor kinematics.
package main

func main() {
	Execute()
}
