package game

// Fixed user-facing strings.
const (
	msgWelcome       = "Hi! I'm thinking of a number between %d and %d."
	msgUnlimited     = "Try to guess it! You have unlimited attempts."
	msgLimited       = "Try to guess it! You have %d attempts."
	msgPrompt        = "Enter a number and press Enter:"
	msgEmpty         = "Empty input. Try again, or type 'exit' to leave."
	msgFarewell      = "Leaving the game. See you next time!"
	msgNotANumber    = "That doesn't look like a number. Try again."
	msgOutOfRange    = "The number must be between %d and %d."
	msgSecretLarger  = "The secret is larger than your guess."
	msgSecretSmaller = "The secret is smaller than your guess."
	msgWon           = "Congratulations! You guessed the number %d in %d attempts."
	msgLost          = "Out of attempts! The secret number was %d."
)
