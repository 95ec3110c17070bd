package messages

// Console messages for the interactive menu.
const (
	// ConsoleMenuTitle heads the main menu.
	ConsoleMenuTitle      = "--- SmartCity System Console ---"
	ConsoleMenuFooter     = "--------------------------------"
	ConsoleMenuAllStatus  = "Get All Subsystem Status"
	ConsoleMenuSimulate   = "Run Simulation Cycle"
	ConsoleMenuOperate    = "Operate Specific Subsystem"
	ConsoleMenuExit       = "Exit"
	ConsoleMenuOptionFmt  = "%d. %s"
	ConsoleChoicePrompt   = "Enter your choice: "
	ConsoleInvalidChoice  = "Invalid choice. Please try again."
	ConsoleGoodbye        = "Exiting SmartCity System. Goodbye!"
	ConsoleStatusLineFmt  = "[%s]: %s"
	ConsoleAllStatusTitle = "--- All Subsystem Status ---"
	ConsoleAllStatusRule  = "----------------------------"
	ConsoleFinalTitle     = "--- Final Status After Simulation ---"
	ConsoleFinalRule      = "-------------------------------------"

	// ConsoleSubsystemsTitle heads the subsystem picker.
	ConsoleSubsystemsTitle  = "Available Subsystems:"
	ConsoleSubsystemPrompt  = "Select subsystem number to operate: "
	ConsoleActionPromptFmt  = "Enter action for %s (e.g., 'optimize_flow', 'run_patrol', 'report_consumption'): "
	ConsoleOperationResult  = "Operation Result:"
	ConsoleInvalidNumber    = "Invalid input. Please enter a number."
	ConsoleInvalidSubsystem = "Invalid subsystem number."
	ConsoleReadInputErrFmt  = "read console input: %w"
	ConsoleRequiresTerminal = "console forms require an interactive terminal"
)
