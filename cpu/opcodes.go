package cpu

// Opcode is one entry of the 256-slot decode table: which mnemonic, which
// addressing mode, and which executor function a given opcode byte
// triggers. Illegal opcodes leave Exec nil.
type Opcode struct {
	Mnemonic string
	Mode     AddressingMode
	Exec     func(c *CPU, op Operand)
}

// opcodes is the dense decode table, indexed directly by opcode byte. A
// plain array keeps dispatch allocation-free and puts the full 6502
// instruction set in one place, as spec.md's Design Notes prescribe.
var opcodes = buildOpcodes()

// OpcodeAt returns the decode table entry for b, for tools (debugger,
// disassemblers) that want to inspect the table without stepping a CPU.
func OpcodeAt(b byte) Opcode {
	return opcodes[b]
}

func buildOpcodes() [256]Opcode {
	var t [256]Opcode

	set := func(b byte, mnemonic string, mode AddressingMode, exec func(c *CPU, op Operand)) {
		t[b] = Opcode{Mnemonic: mnemonic, Mode: mode, Exec: exec}
	}

	// ADC
	set(0x69, "ADC", Immediate, (*CPU).ADC)
	set(0x65, "ADC", ZeroPage, (*CPU).ADC)
	set(0x75, "ADC", ZeroPageX, (*CPU).ADC)
	set(0x6D, "ADC", Absolute, (*CPU).ADC)
	set(0x7D, "ADC", AbsoluteX, (*CPU).ADC)
	set(0x79, "ADC", AbsoluteY, (*CPU).ADC)
	set(0x61, "ADC", IndirectX, (*CPU).ADC)
	set(0x71, "ADC", IndirectY, (*CPU).ADC)

	// AND
	set(0x29, "AND", Immediate, (*CPU).AND)
	set(0x25, "AND", ZeroPage, (*CPU).AND)
	set(0x35, "AND", ZeroPageX, (*CPU).AND)
	set(0x2D, "AND", Absolute, (*CPU).AND)
	set(0x3D, "AND", AbsoluteX, (*CPU).AND)
	set(0x39, "AND", AbsoluteY, (*CPU).AND)
	set(0x21, "AND", IndirectX, (*CPU).AND)
	set(0x31, "AND", IndirectY, (*CPU).AND)

	// ASL
	set(0x0A, "ASL", Accumulator, (*CPU).ASL)
	set(0x06, "ASL", ZeroPage, (*CPU).ASL)
	set(0x16, "ASL", ZeroPageX, (*CPU).ASL)
	set(0x0E, "ASL", Absolute, (*CPU).ASL)
	set(0x1E, "ASL", AbsoluteX, (*CPU).ASL)

	// branches
	set(0x90, "BCC", Relative, (*CPU).BCC)
	set(0xB0, "BCS", Relative, (*CPU).BCS)
	set(0xF0, "BEQ", Relative, (*CPU).BEQ)
	set(0x30, "BMI", Relative, (*CPU).BMI)
	set(0xD0, "BNE", Relative, (*CPU).BNE)
	set(0x10, "BPL", Relative, (*CPU).BPL)
	set(0x50, "BVC", Relative, (*CPU).BVC)
	set(0x70, "BVS", Relative, (*CPU).BVS)

	// BIT
	set(0x24, "BIT", ZeroPage, (*CPU).BIT)
	set(0x2C, "BIT", Absolute, (*CPU).BIT)

	// BRK
	set(0x00, "BRK", Implicit, (*CPU).BRK)

	// flag clear/set
	set(0x18, "CLC", Implicit, (*CPU).CLC)
	set(0xD8, "CLD", Implicit, (*CPU).CLD)
	set(0x58, "CLI", Implicit, (*CPU).CLI)
	set(0xB8, "CLV", Implicit, (*CPU).CLV)
	set(0x38, "SEC", Implicit, (*CPU).SEC)
	set(0xF8, "SED", Implicit, (*CPU).SED)
	set(0x78, "SEI", Implicit, (*CPU).SEI)

	// CMP
	set(0xC9, "CMP", Immediate, (*CPU).CMP)
	set(0xC5, "CMP", ZeroPage, (*CPU).CMP)
	set(0xD5, "CMP", ZeroPageX, (*CPU).CMP)
	set(0xCD, "CMP", Absolute, (*CPU).CMP)
	set(0xDD, "CMP", AbsoluteX, (*CPU).CMP)
	set(0xD9, "CMP", AbsoluteY, (*CPU).CMP)
	set(0xC1, "CMP", IndirectX, (*CPU).CMP)
	set(0xD1, "CMP", IndirectY, (*CPU).CMP)

	// CPX / CPY
	set(0xE0, "CPX", Immediate, (*CPU).CPX)
	set(0xE4, "CPX", ZeroPage, (*CPU).CPX)
	set(0xEC, "CPX", Absolute, (*CPU).CPX)
	set(0xC0, "CPY", Immediate, (*CPU).CPY)
	set(0xC4, "CPY", ZeroPage, (*CPU).CPY)
	set(0xCC, "CPY", Absolute, (*CPU).CPY)

	// DEC / DEX / DEY
	set(0xC6, "DEC", ZeroPage, (*CPU).DEC)
	set(0xD6, "DEC", ZeroPageX, (*CPU).DEC)
	set(0xCE, "DEC", Absolute, (*CPU).DEC)
	set(0xDE, "DEC", AbsoluteX, (*CPU).DEC)
	set(0xCA, "DEX", Implicit, (*CPU).DEX)
	set(0x88, "DEY", Implicit, (*CPU).DEY)

	// EOR
	set(0x49, "EOR", Immediate, (*CPU).EOR)
	set(0x45, "EOR", ZeroPage, (*CPU).EOR)
	set(0x55, "EOR", ZeroPageX, (*CPU).EOR)
	set(0x4D, "EOR", Absolute, (*CPU).EOR)
	set(0x5D, "EOR", AbsoluteX, (*CPU).EOR)
	set(0x59, "EOR", AbsoluteY, (*CPU).EOR)
	set(0x41, "EOR", IndirectX, (*CPU).EOR)
	set(0x51, "EOR", IndirectY, (*CPU).EOR)

	// INC / INX / INY
	set(0xE6, "INC", ZeroPage, (*CPU).INC)
	set(0xF6, "INC", ZeroPageX, (*CPU).INC)
	set(0xEE, "INC", Absolute, (*CPU).INC)
	set(0xFE, "INC", AbsoluteX, (*CPU).INC)
	set(0xE8, "INX", Implicit, (*CPU).INX)
	set(0xC8, "INY", Implicit, (*CPU).INY)

	// JMP / JSR / RTS / RTI
	set(0x4C, "JMP", Absolute, (*CPU).JMP)
	set(0x6C, "JMP", Indirect, (*CPU).JMP)
	set(0x20, "JSR", Absolute, (*CPU).JSR)
	set(0x60, "RTS", Implicit, (*CPU).RTS)
	set(0x40, "RTI", Implicit, (*CPU).RTI)

	// LDA / LDX / LDY
	set(0xA9, "LDA", Immediate, (*CPU).LDA)
	set(0xA5, "LDA", ZeroPage, (*CPU).LDA)
	set(0xB5, "LDA", ZeroPageX, (*CPU).LDA)
	set(0xAD, "LDA", Absolute, (*CPU).LDA)
	set(0xBD, "LDA", AbsoluteX, (*CPU).LDA)
	set(0xB9, "LDA", AbsoluteY, (*CPU).LDA)
	set(0xA1, "LDA", IndirectX, (*CPU).LDA)
	set(0xB1, "LDA", IndirectY, (*CPU).LDA)

	set(0xA2, "LDX", Immediate, (*CPU).LDX)
	set(0xA6, "LDX", ZeroPage, (*CPU).LDX)
	set(0xB6, "LDX", ZeroPageY, (*CPU).LDX)
	set(0xAE, "LDX", Absolute, (*CPU).LDX)
	set(0xBE, "LDX", AbsoluteY, (*CPU).LDX)

	set(0xA0, "LDY", Immediate, (*CPU).LDY)
	set(0xA4, "LDY", ZeroPage, (*CPU).LDY)
	set(0xB4, "LDY", ZeroPageX, (*CPU).LDY)
	set(0xAC, "LDY", Absolute, (*CPU).LDY)
	set(0xBC, "LDY", AbsoluteX, (*CPU).LDY)

	// LSR
	set(0x4A, "LSR", Accumulator, (*CPU).LSR)
	set(0x46, "LSR", ZeroPage, (*CPU).LSR)
	set(0x56, "LSR", ZeroPageX, (*CPU).LSR)
	set(0x4E, "LSR", Absolute, (*CPU).LSR)
	set(0x5E, "LSR", AbsoluteX, (*CPU).LSR)

	// NOP
	set(0xEA, "NOP", Implicit, (*CPU).NOP)

	// ORA
	set(0x09, "ORA", Immediate, (*CPU).ORA)
	set(0x05, "ORA", ZeroPage, (*CPU).ORA)
	set(0x15, "ORA", ZeroPageX, (*CPU).ORA)
	set(0x0D, "ORA", Absolute, (*CPU).ORA)
	set(0x1D, "ORA", AbsoluteX, (*CPU).ORA)
	set(0x19, "ORA", AbsoluteY, (*CPU).ORA)
	set(0x01, "ORA", IndirectX, (*CPU).ORA)
	set(0x11, "ORA", IndirectY, (*CPU).ORA)

	// stack ops
	set(0x48, "PHA", Implicit, (*CPU).PHA)
	set(0x08, "PHP", Implicit, (*CPU).PHP)
	set(0x68, "PLA", Implicit, (*CPU).PLA)
	set(0x28, "PLP", Implicit, (*CPU).PLP)

	// ROL / ROR
	set(0x2A, "ROL", Accumulator, (*CPU).ROL)
	set(0x26, "ROL", ZeroPage, (*CPU).ROL)
	set(0x36, "ROL", ZeroPageX, (*CPU).ROL)
	set(0x2E, "ROL", Absolute, (*CPU).ROL)
	set(0x3E, "ROL", AbsoluteX, (*CPU).ROL)

	set(0x6A, "ROR", Accumulator, (*CPU).ROR)
	set(0x66, "ROR", ZeroPage, (*CPU).ROR)
	set(0x76, "ROR", ZeroPageX, (*CPU).ROR)
	set(0x6E, "ROR", Absolute, (*CPU).ROR)
	set(0x7E, "ROR", AbsoluteX, (*CPU).ROR)

	// SBC
	set(0xE9, "SBC", Immediate, (*CPU).SBC)
	set(0xE5, "SBC", ZeroPage, (*CPU).SBC)
	set(0xF5, "SBC", ZeroPageX, (*CPU).SBC)
	set(0xED, "SBC", Absolute, (*CPU).SBC)
	set(0xFD, "SBC", AbsoluteX, (*CPU).SBC)
	set(0xF9, "SBC", AbsoluteY, (*CPU).SBC)
	set(0xE1, "SBC", IndirectX, (*CPU).SBC)
	set(0xF1, "SBC", IndirectY, (*CPU).SBC)

	// STA / STX / STY
	set(0x85, "STA", ZeroPage, (*CPU).STA)
	set(0x95, "STA", ZeroPageX, (*CPU).STA)
	set(0x8D, "STA", Absolute, (*CPU).STA)
	set(0x9D, "STA", AbsoluteX, (*CPU).STA)
	set(0x99, "STA", AbsoluteY, (*CPU).STA)
	set(0x81, "STA", IndirectX, (*CPU).STA)
	set(0x91, "STA", IndirectY, (*CPU).STA)

	set(0x86, "STX", ZeroPage, (*CPU).STX)
	set(0x96, "STX", ZeroPageY, (*CPU).STX)
	set(0x8E, "STX", Absolute, (*CPU).STX)

	set(0x84, "STY", ZeroPage, (*CPU).STY)
	set(0x94, "STY", ZeroPageX, (*CPU).STY)
	set(0x8C, "STY", Absolute, (*CPU).STY)

	// register transfers
	set(0xAA, "TAX", Implicit, (*CPU).TAX)
	set(0xA8, "TAY", Implicit, (*CPU).TAY)
	set(0xBA, "TSX", Implicit, (*CPU).TSX)
	set(0x8A, "TXA", Implicit, (*CPU).TXA)
	set(0x9A, "TXS", Implicit, (*CPU).TXS)
	set(0x98, "TYA", Implicit, (*CPU).TYA)

	return t
}
