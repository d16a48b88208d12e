package gameserver

// Player-facing text. Descriptions written back into rooms are part of the
// fixed item-use table and apply to whichever room the item is used in.
const (
	msgNotUnderstood = "I don't understand."

	msgPitchBlack  = "It is pitch black! You can't see anything."
	msgDangerFmt   = "DANGER: A %s is watching you!"
	msgYouSeeFmt   = "You see: %s"
	msgExitsFmt    = "Exits: %s"
	msgInventFmt   = "Inventory: %s"
	statusRuleText = "------------------------------------------------"

	msgNoExit       = "You can't go that way."
	msgDoorLocked   = "The door is locked. You need to use a key first."
	msgBlockedFmt   = "The %s blocks your path! You cannot pass."
	msgTooDarkToGo  = "It is too dark to go in there! You need to use a light source."
	msgEscaped      = "*** YOU HAVE ESCAPED! ***"
	msgTooDarkToGet = "It's too dark to find anything!"
	msgPickedUpFmt  = "Picked up %s."
	msgNotHereFmt   = "No %s here."

	msgNotCarriedFmt = "You don't have a %s."
	msgCannotUseFmt  = "You can't use the %s."
	msgNotHere       = "You can't use that here."
	msgKeyTurns      = "You insert the rusty key into the lock... CLICK! The door opens."
	msgTorchLit      = "You strike a flint. The torch flares to life! You can see now."
	msgTorchAlready  = "The torch is already lit."
	msgSwingFmt      = "You swing the sword at the %s..."
	msgDefeatedFmt   = "It's a direct hit! The %s falls to the ground, defeated."
	msgSwingAir      = "You swing your sword at the air. Whoosh!"

	// UnlockedDescription replaces a room's description once its door is unlocked.
	UnlockedDescription = "You are in a cell. The door north is unlocked."
	// DefeatedDescription replaces a room's description once its enemy is defeated.
	DefeatedDescription = "You are at the main gate. A dead goblin lies on the floor."
)
