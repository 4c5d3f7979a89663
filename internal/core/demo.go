package core

// Built-in sample used by --demo: an emotionally charged snippet with the
// tone markers the classifier looks for.
const DemoSource = `# This is a terrible hack but I can't figure out the right way
def calculate_stuff(x, y):
    # TODO: fix this mess later
    # I hate this function, it's so confusing
    result = x * y + 42  # why 42? I have no idea anymore
    return result

# Another TODO: refactor everything
def main():
    # This probably won't work but whatever
    a = 5
    b = 10
    print(calculate_stuff(a, b))  # fingers crossed
`

const DemoCommitMessage = "ughhh fixed the bug but created 3 more problems... why is coding so hard today"

const DemoDeveloperName = "Demo Developer"
