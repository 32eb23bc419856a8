package repl

// Banner is printed once when an interactive session starts.
const Banner = `  ____    _                                        _   _
 |  _ \  (_)   ___    ___           _ __    ___   | | | |   ___   _ __
 | | | | | |  / __|  / _ \  _____  | '__|  / _ \  | | | |  / _ \ | '__|
 | |_| | | | | (__  |  __/ |_____| | |    | (_) | | | | | |  __/ | |
 |____/  |_|  \___|  \___|         |_|     \___/  |_| |_|  \___| |_|

Welcome to Dice-roller.
Enter "help" if you need help :D
-------------------------------------------------
`

// Prompt asks for the next line of input.
const Prompt = "\nEnter the dice roll you want to make (or \"help\"): "
