package grammar

// loroSyntax is a six-command device programmer grammar.
func loroSyntax() *Syntax {
	device := Parameter{Identifier: "device-name", ShortName: "-d", Brief: "Name of a device.", Cardinality: 1}
	file := Parameter{Identifier: "program-file-path", ShortName: "-p", Brief: "Program file path.", Required: true, Cardinality: 1}

	return NewSyntax("Loro device programmer", "2.1.32.7").
		AddCommand(Command{Identifier: "list", FullName: "list", Brief: "Lists all Loro devices.",
			Remarks: "Command lists system names of all connected Loro devices."}).
		AddCommand(Command{Identifier: "reset", FullName: "reset", Brief: "Resets device.",
			Remarks: "Command resets Loro device."}).
		AddParameter(device).
		AddCommand(Command{Identifier: "program", FullName: "program", Brief: "Programs device with specified file.",
			Remarks: "Command programs Loro device with specified program file."}).
		AddParameter(device).
		AddParameter(file).
		AddCommand(Command{Identifier: "backup", FullName: "backup", Brief: "Downloads device program into local file for backup.",
			Remarks: "Command reads Loro device program and stores it in local file."}).
		AddParameter(device).
		AddParameter(file).
		AddCommand(Command{Identifier: "erase", FullName: "erase", Brief: "Erases device.",
			Remarks: "Command erases program from Loro device."}).
		AddParameter(device).
		AddCommand(Command{Identifier: "secure", FullName: "secure", Brief: "Secures device.",
			Remarks: "Command secures Loro device. Once the device is secured its " +
				"program cannot be read or updated even by external programmer. " +
				"To exit secured mode the device need to be reset to factory " +
				"settings using special electrical technique."}).
		AddParameter(device).
		AddParameter(Parameter{Identifier: "force", ShortName: "-f", Brief: "Do not prompt."})
}

// packSyntax is a single-command grammar: optional -f, required -p <value>.
func packSyntax() *Syntax {
	return NewSyntax("pack", "1.0.0").
		AddCommand(Command{Identifier: "pack", Brief: "Packs files."}).
		AddParameter(Parameter{Identifier: "f", ShortName: "-f", Brief: "Overwrite the output."}).
		AddParameter(Parameter{Identifier: "p", ShortName: "-p", ValueName: "value", Brief: "Output path.", Required: true, Cardinality: 1})
}

// threeCommandSyntax has exactly three commands and no parameters.
func threeCommandSyntax() *Syntax {
	return NewSyntax("tri", "0.3").
		AddCommand(Command{Identifier: "start", FullName: "start", Brief: "Starts."}).
		AddCommand(Command{Identifier: "stop", FullName: "stop", Brief: "Stops."}).
		AddCommand(Command{Identifier: "status", FullName: "status", ShortName: "st", Brief: "Shows status."})
}

func parse(s *Syntax, argv ...string) (*Parser, bool) {
	p := NewParser(s, NewArguments(argv))
	return p, p.Parse()
}
